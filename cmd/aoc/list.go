package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available days",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, d := range registry(logger) {
			fmt.Fprintf(out, "%2d  %s\n", d.Number, d.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
