package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2025/internal/puzzle"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range puzzle.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d.Number, d.Title)
			}
			return nil
		},
	}
}
