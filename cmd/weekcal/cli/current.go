// ABOUTME: "current" command printing this week
// ABOUTME: Reads the system clock once per invocation

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	weeks "weekcal-api/weekslib"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the week containing today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *weeks.Client) error {
			w, err := client.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Format(formatFlag))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
