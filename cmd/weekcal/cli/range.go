// ABOUTME: "range" command printing the dates a numbered week covers
// ABOUTME: Takes either a year and a week number or a single YYYY-WW label

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	weeks "weekcal-api/weekslib"
)

var rangeCmd = &cobra.Command{
	Use:   "range <year> <number> | range <YYYY-WW>",
	Short: "Show the start and end of a week",
	Example: "  weekcal range 2023 31\n" +
		"  weekcal range 2020-W53 --format F",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *weeks.Client) error {
			var (
				w   weeks.Week
				err error
			)
			if len(args) == 1 {
				w, err = client.Parse(cmd.Context(), args[0])
			} else {
				year, perr := parseIntArg("year", args[0])
				if perr != nil {
					return perr
				}
				number, perr := parseIntArg("week number", args[1])
				if perr != nil {
					return perr
				}
				w, err = client.Week(cmd.Context(), year, number)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, w.Format(formatFlag))
			fmt.Fprintf(out, "Start: %s\n", w.Start().Format(time.RFC3339Nano))
			fmt.Fprintf(out, "End:   %s\n", w.End().Format(time.RFC3339Nano))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
