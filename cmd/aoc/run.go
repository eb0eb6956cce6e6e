package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aoc2025/internal/input"
	"aoc2025/internal/puzzle"
)

func newRunCmd(a *app) *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve one or more days",
		Long: `Solve the given days, or every registered day when none are given.

Examples:
  # Solve day 3 from inputs/day03.txt
  aoc run 3

  # Solve every day, splitting work over 4 goroutines where possible
  aoc run --workers 4

  # Solve day 1 from stdin
  cat day01.txt | aoc run 1 --input -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := selectDays(args)
			if err != nil {
				return err
			}
			if inputPath != "" && len(days) != 1 {
				return fmt.Errorf("--input needs exactly one day, got %d", len(days))
			}

			out := cmd.OutOrStdout()
			opts := puzzle.Options{Workers: a.cfg.Workers, Logger: a.logger}
			for _, d := range days {
				var data []byte
				if inputPath != "" {
					data, err = input.Open(inputPath)
				} else {
					data, err = input.Load(a.cfg.InputDir, d.Number)
				}
				if err != nil {
					return fmt.Errorf("day %d: %w", d.Number, err)
				}

				ans, err := puzzle.Run(cmd.Context(), d, data, opts)
				if err != nil {
					return err
				}
				if len(days) > 1 {
					fmt.Fprintf(out, "Day %d: %s\n", d.Number, d.Title)
				}
				if _, err := ans.WriteTo(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "read the input from this file instead (- for stdin)")
	return cmd
}

// selectDays resolves day arguments, or returns every day when args is empty.
func selectDays(args []string) ([]puzzle.Day, error) {
	if len(args) == 0 {
		days := puzzle.All()
		if len(days) == 0 {
			return nil, fmt.Errorf("no days registered")
		}
		return days, nil
	}

	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		d, ok := puzzle.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("day %d is not solved", n)
		}
		days = append(days, d)
	}
	return days, nil
}
