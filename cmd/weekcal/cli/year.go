// ABOUTME: "year" command listing every week of a year
// ABOUTME: Prints one formatted week per line followed by a summary

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	weeks "weekcal-api/weekslib"
)

var yearCmd = &cobra.Command{
	Use:     "year <year>",
	Short:   "List every week of a year",
	Example: "  weekcal year 2020 --first-day sunday --rule first-day",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseIntArg("year", args[0])
		if err != nil {
			return err
		}
		return withClient(func(client *weeks.Client) error {
			cal, err := client.Year(cmd.Context(), year)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range cal.Weeks {
				fmt.Fprintln(out, w.Format(formatFlag))
			}
			fmt.Fprintf(out, "%d weeks (%s)\n", cal.Len(), cal.Policy)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(yearCmd)
}
