// Package idrange sums product IDs made of a repeated digit block inside
// inclusive ID ranges, without enumerating the ranges.
//
// An ID of L digits that repeats a b-digit block r = L/b times is a
// multiple of step = 1 + 10^b + 10^2b + ... + 10^(r-1)b, and every such
// multiple between step*10^(b-1) and step*(10^b-1) has that shape. The
// IDs of one shape inside a range therefore form an arithmetic series.
package idrange

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// MaxDigits is the longest ID the series arithmetic handles in int64.
const MaxDigits = 18

// ErrMalformedRange reports an item that is not "lo-hi" with lo <= hi.
var ErrMalformedRange = errors.New("malformed ID range")

// Range is an inclusive span of IDs.
type Range struct {
	Lo, Hi int64
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// ParseRange parses "lo-hi".
func ParseRange(s string) (Range, error) {
	loStr, hiStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: missing '-'", ErrMalformedRange, s)
	}
	lo, err := parseID(loStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
	}
	hi, err := parseID(hiStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: %q: start after end", ErrMalformedRange, s)
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// ParseRanges parses each item, stopping at the first malformed one.
func ParseRanges(items []string) ([]Range, error) {
	out := make([]Range, 0, len(items))
	for i, item := range items {
		r, err := ParseRange(item)
		if err != nil {
			return nil, fmt.Errorf("range %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func parseID(s string) (int64, error) {
	if s == "" || len(s) > MaxDigits {
		return 0, fmt.Errorf("ID must have 1 to %d digits", MaxDigits)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", s[i])
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// SumDoubled adds every ID that is some block written exactly twice,
// such as 55, 6464 or 123123.
func SumDoubled(ranges []Range) *big.Int {
	total := new(big.Int)
	for length := 2; length <= MaxDigits; length += 2 {
		total.Add(total, pattern(length, length/2).sum(ranges))
	}
	return total
}

// SumRepeated adds every ID that is some block written at least twice,
// such as 111, 1212 or 824824824. Each ID is counted once.
//
// For a length L, the IDs repeating p times for a prime p|L cover every
// repeated ID. Shapes for primes p and q overlap exactly in the shape
// with block L/(pq), so the union is taken by inclusion-exclusion over
// the distinct prime factors of L.
func SumRepeated(ranges []Range) *big.Int {
	total := new(big.Int)
	for length := 2; length <= MaxDigits; length++ {
		primes := primeFactors(length)
		for mask := 1; mask < 1<<len(primes); mask++ {
			reps, picked := 1, 0
			for i, p := range primes {
				if mask&(1<<i) != 0 {
					reps *= p
					picked++
				}
			}
			s := pattern(length, length/reps).sum(ranges)
			if picked%2 == 1 {
				total.Add(total, s)
			} else {
				total.Sub(total, s)
			}
		}
	}
	return total
}

// family is one ID shape: the multiples of step in [start, end].
type family struct {
	step, start, end int64
}

// pattern returns the family of length-digit IDs repeating a block of
// block digits.
func pattern(length, block int) family {
	var step int64
	for i := 0; i < length/block; i++ {
		step = step*pow10(block) + 1
	}
	return family{
		step:  step,
		start: step * pow10(block-1),
		end:   step * (pow10(block) - 1),
	}
}

// sum adds the members of f that fall inside each range.
func (f family) sum(ranges []Range) *big.Int {
	total := new(big.Int)
	step := big.NewInt(f.step)
	var n, lower, term, tri big.Int
	for _, r := range ranges {
		first := r.Lo / f.step * f.step
		if first < r.Lo {
			first += f.step
		}
		lo := max(first, f.start)
		hi := min(r.Hi, f.end)
		if lo > hi {
			continue
		}
		count := (hi-lo)/f.step + 1

		// count*lo + step*count*(count-1)/2
		n.SetInt64(count)
		lower.SetInt64(lo)
		term.Mul(&n, &lower)
		tri.SetInt64(count - 1)
		tri.Mul(&tri, &n)
		tri.Rsh(&tri, 1)
		tri.Mul(&tri, step)
		total.Add(total, &term)
		total.Add(total, &tri)
	}
	return total
}

func pow10(n int) int64 {
	v := int64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

func primeFactors(n int) []int {
	var out []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			out = append(out, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
