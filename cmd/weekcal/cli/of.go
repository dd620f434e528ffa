// ABOUTME: "of" command printing the week that contains a date
// ABOUTME: Accepts the flexible date formats understood by the time utilities

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	timeutil "weekcal-api/pkg/utils/time"
	weeks "weekcal-api/weekslib"
)

var ofNumberOnly bool

var ofCmd = &cobra.Command{
	Use:   "of <date>",
	Short: "Show the week containing a date",
	Example: "  weekcal of 2021-01-01\n" +
		"  weekcal of 2024-12-30 --locale en-US --format F",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := timeutil.ParseDate("date", args[0])
		if err != nil {
			return err
		}
		return withClient(func(client *weeks.Client) error {
			if ofNumberOnly {
				fmt.Fprintln(cmd.OutOrStdout(), client.WeekOf(date))
				return nil
			}
			w, err := client.WeekOfDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Format(formatFlag))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ofCmd)
	ofCmd.Flags().BoolVar(&ofNumberOnly, "number", false, "Print only the week number within the date's own year")
}
