// ABOUTME: Root cobra command for weekcal and its persistent policy flags
// ABOUTME: Every subcommand shares the first-day, rule, locale and format settings

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weekcal-api/core/domain"
)

var (
	firstDayFlag  string
	ruleFlag      string
	localeFlag    string
	formatFlag    string
	cacheFlag     string
	cachePathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "weekcal",
	Short: "weekcal maps dates to numbered calendar weeks",
	Long: "weekcal answers \"which week is this date in\" and \"which dates does week N of year Y cover\" " +
		"under a configurable first day of week and week 1 rule.",
	SilenceUsage: true,
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&firstDayFlag, "first-day", "", "First day of week (monday, sunday, ...)")
	rootCmd.PersistentFlags().StringVar(&ruleFlag, "rule", "", "Week 1 rule: first-day, first-four-day-week, first-full-week")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Derive the policy from a locale such as en-US")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", domain.FormatShortPadded, "Output layout: F, S, s, i or I")
	rootCmd.PersistentFlags().StringVar(&cacheFlag, "cache", "memory", "Range cache: memory or sqlite")
	rootCmd.PersistentFlags().StringVar(&cachePathFlag, "cache-path", "", "SQLite cache file (with --cache sqlite)")
}
