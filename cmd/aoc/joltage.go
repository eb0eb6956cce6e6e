package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2025/internal/input"
	"aoc2025/joltage"
)

func newJoltageCmd(a *app) *cobra.Command {
	var lengths []int
	cmd := &cobra.Command{
		Use:   "joltage [file]",
		Short: "Sum the best joltage of each bank for arbitrary battery counts",
		Long: `Read whitespace-separated digit banks and print, for every requested
battery count k, the sum over banks of the largest k-digit number that keeps
the bank's digit order.

Examples:
  # The two puzzle parts for inputs/day03.txt
  aoc joltage

  # Other battery counts, banks from stdin
  echo 987654321111111 811111111111119 | aoc joltage - -k 3 -k 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = input.Open(args[0])
			} else {
				data, err = input.Load(a.cfg.InputDir, 3)
			}
			if err != nil {
				return err
			}

			tokens, err := input.Fields(data)
			if err != nil {
				return err
			}
			banks, err := joltage.ParseBanks(tokens)
			if err != nil {
				return err
			}
			a.logger.Debug("parsed banks", zap.Int("banks", len(banks)))

			out := cmd.OutOrStdout()
			for _, k := range lengths {
				total, err := joltage.SumParallel(cmd.Context(), banks, k, a.cfg.Workers)
				if err != nil {
					return fmt.Errorf("k=%d: %w", k, err)
				}
				fmt.Fprintf(out, "k=%d: %s\n", k, total)
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&lengths, "batteries", "k", []int{joltage.Part1Length, joltage.Part2Length}, "batteries to turn on per bank (repeatable)")
	return cmd
}
