// Package puzzle keeps the registry of daily solvers and runs them.
package puzzle

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Answer is what a solver prints. Part2 is empty on days with one part.
type Answer struct {
	Part1 string
	Part2 string
}

// WriteTo prints "Part 1: ..." and, when present, "Part 2: ...".
func (a Answer) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Part 1: %s\n", a.Part1)
	if err != nil || a.Part2 == "" {
		return int64(n), err
	}
	m, err := fmt.Fprintf(w, "Part 2: %s\n", a.Part2)
	return int64(n + m), err
}

// Options are the runner settings passed to every solver.
type Options struct {
	// Workers bounds parallelism for solvers that can split their input.
	Workers int
	Logger  *zap.Logger
}

// Solver turns a raw input into an answer.
type Solver func(ctx context.Context, data []byte, opts Options) (Answer, error)

// Day is a registered solver.
type Day struct {
	Number int
	Title  string
	Solve  Solver
}

var (
	mu   sync.RWMutex
	days = map[int]Day{}
)

// Register adds d. It panics on a duplicate or invalid day, which can
// only happen at init time.
func Register(d Day) {
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("puzzle: invalid day %d", d.Number))
	}
	if d.Solve == nil {
		panic(fmt.Sprintf("puzzle: day %d has no solver", d.Number))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := days[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	days[d.Number] = d
}

// Lookup returns the solver for day n.
func Lookup(n int) (Day, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := days[n]
	return d, ok
}

// All returns every registered day in order.
func All() []Day {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Day, 0, len(days))
	for _, d := range days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Run solves d on data, logging how long it took.
func Run(ctx context.Context, d Day, data []byte, opts Options) (Answer, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	log := opts.Logger.With(zap.Int("day", d.Number))
	opts.Logger = log

	log.Debug("solving", zap.Int("input_bytes", len(data)), zap.Int("workers", opts.Workers))
	start := time.Now()
	ans, err := d.Solve(ctx, data, opts)
	if err != nil {
		log.Error("solve failed", zap.Error(err))
		return Answer{}, fmt.Errorf("day %d: %w", d.Number, err)
	}
	log.Info("solved", zap.String("title", d.Title), zap.Duration("elapsed", time.Since(start)))
	return ans, nil
}
