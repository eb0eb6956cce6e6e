package main

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"aoc2025/dial"
	"aoc2025/idrange"
	"aoc2025/internal/input"
	"aoc2025/internal/puzzle"
	"aoc2025/joltage"
	"aoc2025/packing"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 1, Title: "Secret Entrance", Solve: solveDial})
	puzzle.Register(puzzle.Day{Number: 2, Title: "Gift Shop", Solve: solveIDRanges})
	puzzle.Register(puzzle.Day{Number: 3, Title: "Lobby", Solve: solveJoltage})
	puzzle.Register(puzzle.Day{Number: 12, Title: "Christmas Tree Farm", Solve: solvePacking})
}

func solveDial(_ context.Context, data []byte, _ puzzle.Options) (puzzle.Answer, error) {
	tokens, err := input.Fields(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rots, err := dial.ParseRotations(tokens)
	if err != nil {
		return puzzle.Answer{}, err
	}
	t := dial.Count(rots)
	return puzzle.Answer{Part1: strconv.Itoa(t.AtZero), Part2: strconv.Itoa(t.Clicks)}, nil
}

func solveIDRanges(_ context.Context, data []byte, _ puzzle.Options) (puzzle.Answer, error) {
	ranges, err := idrange.ParseRanges(input.Split(data, ","))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: idrange.SumDoubled(ranges).String(),
		Part2: idrange.SumRepeated(ranges).String(),
	}, nil
}

func solveJoltage(ctx context.Context, data []byte, opts puzzle.Options) (puzzle.Answer, error) {
	tokens, err := input.Fields(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	banks, err := joltage.ParseBanks(tokens)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, p2, err := joltage.Solve(ctx, banks, opts.Workers)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: p1.String(), Part2: p2.String()}, nil
}

func solvePacking(_ context.Context, data []byte, opts puzzle.Options) (puzzle.Answer, error) {
	p, err := packing.Parse(input.Lines(data))
	if err != nil {
		return puzzle.Answer{}, err
	}
	s := packing.CountFits(p)
	if s.Undecided > 0 {
		opts.Logger.Warn("regions neither clearly fit nor clearly overflow; counted as not fitting",
			zap.Int("undecided", s.Undecided))
	}
	opts.Logger.Debug("classified regions",
		zap.Int("fits", s.Fits), zap.Int("impossible", s.Impossible), zap.Int("undecided", s.Undecided))
	return puzzle.Answer{Part1: strconv.Itoa(s.Fits)}, nil
}
