// Package joltage picks the largest k-digit joltage out of battery banks.
//
// A bank is a run of decimal digits. Turning on exactly k batteries of a bank
// yields the number formed by their digits in bank order; the bank's joltage
// is the largest such number. The total output is the sum over all banks.
package joltage

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// Selection lengths used by the two puzzle parts.
const (
	Part1Length = 2
	Part2Length = 12
)

var (
	// ErrMalformedInput reports an empty bank or a non-digit byte.
	ErrMalformedInput = errors.New("malformed bank")
	// ErrInsufficientLength reports a bank with fewer than k digits.
	ErrInsufficientLength = errors.New("bank shorter than selection length")
	// ErrNegativeLength reports k < 0.
	ErrNegativeLength = errors.New("negative selection length")
)

// Bank is an immutable run of ASCII decimal digits.
type Bank []byte

// ParseBank validates s and returns it as a Bank.
// An empty token or any byte outside '0'..'9' is ErrMalformedInput.
func ParseBank(s string) (Bank, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedInput)
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrMalformedInput, s[i], i)
		}
	}
	return Bank(s), nil
}

// ParseBanks parses every token, stopping at the first malformed one.
func ParseBanks(tokens []string) ([]Bank, error) {
	banks := make([]Bank, 0, len(tokens))
	for i, tok := range tokens {
		b, err := ParseBank(tok)
		if err != nil {
			return nil, fmt.Errorf("bank %d: %w", i, err)
		}
		banks = append(banks, b)
	}
	return banks, nil
}

func (b Bank) String() string { return string(b) }

// Value interprets the digits as a base-10 integer. Leading zeros carry no
// value and an empty bank is zero.
func (b Bank) Value() *big.Int {
	v := new(big.Int)
	if len(b) == 0 {
		return v
	}
	// Eighteen digits always fit in a uint64 word, so small banks skip SetString.
	if len(b) <= 18 {
		var u uint64
		for _, d := range b {
			u = u*10 + uint64(d-'0')
		}
		return v.SetUint64(u)
	}
	v.SetString(string(b), 10)
	return v
}

// Select returns the lexicographically largest subsequence of bank with
// exactly k digits.
// Algorithm:
//   - Scan left to right keeping a stack of chosen digits.
//   - Pop the top while it is smaller than the incoming digit and the
//     stack can still be refilled to k: (len(stack)-1) + (n-i) >= k.
//   - Push the incoming digit if the stack holds fewer than k digits.
//
// Equal digits never pop, so the leftmost of equal candidates is kept and
// more input remains for the positions after it.
func Select(bank Bank, k int) (Bank, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, k)
	}
	n := len(bank)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedInput)
	}
	if n < k {
		return nil, fmt.Errorf("%w: have %d digits, need %d", ErrInsufficientLength, n, k)
	}

	stack := make(Bank, 0, k)
	for i, d := range bank {
		if !isDigit(d) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrMalformedInput, d, i)
		}
		for len(stack) > 0 && stack[len(stack)-1] < d && (len(stack)-1)+(n-i) >= k {
			stack = stack[:len(stack)-1]
		}
		if len(stack) < k {
			stack = append(stack, d)
		}
	}

	return stack, nil
}

// Joltage returns the value of the best k-digit selection from bank.
func Joltage(bank Bank, k int) (*big.Int, error) {
	sel, err := Select(bank, k)
	if err != nil {
		return nil, err
	}
	return sel.Value(), nil
}

// Sum adds the joltage of every bank. The first failing bank aborts the
// whole sum; no partial total is returned.
func Sum(banks []Bank, k int) (*big.Int, error) {
	total := new(big.Int)
	for i, b := range banks {
		v, err := Joltage(b, k)
		if err != nil {
			return nil, fmt.Errorf("bank %d: %w", i, err)
		}
		total.Add(total, v)
	}
	return total, nil
}

// SumParallel computes the same total as Sum with banks split into
// contiguous chunks, one per worker. Each worker owns its partial sum and the
// partials are added once every worker has finished.
// workers <= 1 runs Sum on the calling goroutine.
func SumParallel(ctx context.Context, banks []Bank, k, workers int) (*big.Int, error) {
	if workers <= 1 || len(banks) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Sum(banks, k)
	}
	workers = min(workers, len(banks))
	chunk := (len(banks) + workers - 1) / workers

	partials := make([]*big.Int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(banks))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			part := new(big.Int)
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := Joltage(banks[i], k)
				if err != nil {
					return fmt.Errorf("bank %d: %w", i, err)
				}
				part.Add(part, v)
			}
			partials[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := new(big.Int)
	for _, p := range partials {
		if p != nil {
			total.Add(total, p)
		}
	}
	return total, nil
}

// Solve returns both puzzle answers: the totals for 2 and 12 batteries.
func Solve(ctx context.Context, banks []Bank, workers int) (part1, part2 *big.Int, err error) {
	if part1, err = SumParallel(ctx, banks, Part1Length, workers); err != nil {
		return nil, nil, fmt.Errorf("part 1: %w", err)
	}
	if part2, err = SumParallel(ctx, banks, Part2Length, workers); err != nil {
		return nil, nil, fmt.Errorf("part 2: %w", err)
	}
	return part1, part2, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
