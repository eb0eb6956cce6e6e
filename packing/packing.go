// Package packing decides which tree regions can hold their presents.
//
// Presents are shapes drawn in a 3x3 grid. Solving the general packing
// problem is not needed: either every present can be given its own 3x3
// slot, or the presents' cells alone overflow the region.
package packing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SlotSize is the side of the square every present shape fits in.
const SlotSize = 3

var (
	// ErrMalformedShape reports a bad shape header or row.
	ErrMalformedShape = errors.New("malformed shape")
	// ErrMalformedRegion reports a bad region line or a count list that
	// does not match the shapes.
	ErrMalformedRegion = errors.New("malformed region")
)

// Shape is one present, drawn with '#' for occupied cells.
type Shape struct {
	Index int
	Rows  []string
}

// Cells counts occupied cells.
func (s Shape) Cells() int {
	n := 0
	for _, row := range s.Rows {
		n += strings.Count(row, "#")
	}
	return n
}

// Region is a rectangle under a tree and how many of each shape it must hold.
type Region struct {
	Width, Height int
	Counts        []int
}

// Area returns Width*Height.
func (r Region) Area() int { return r.Width * r.Height }

// Presents returns the total number of presents requested.
func (r Region) Presents() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Puzzle is a parsed input.
type Puzzle struct {
	Shapes  []Shape
	Regions []Region
}

// Parse reads shape blocks ("0:" followed by rows of '#' and '.') and
// region lines ("12x5: 1 0 1 0 2 2"). When shapes are present every
// region must list one count per shape.
func Parse(lines []string) (Puzzle, error) {
	var p Puzzle
	var cur *Shape
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			cur = nil
		case isRegionLine(line):
			cur = nil
			r, err := parseRegion(line)
			if err != nil {
				return Puzzle{}, fmt.Errorf("line %d: %w", i+1, err)
			}
			p.Regions = append(p.Regions, r)
		case strings.HasSuffix(line, ":"):
			idx, err := strconv.Atoi(strings.TrimSuffix(line, ":"))
			if err != nil || idx != len(p.Shapes) {
				return Puzzle{}, fmt.Errorf("line %d: %w: header %q", i+1, ErrMalformedShape, line)
			}
			p.Shapes = append(p.Shapes, Shape{Index: idx})
			cur = &p.Shapes[len(p.Shapes)-1]
		default:
			if cur == nil || strings.Trim(line, "#.") != "" {
				return Puzzle{}, fmt.Errorf("line %d: %w: row %q", i+1, ErrMalformedShape, line)
			}
			if len(cur.Rows) == SlotSize || len(line) > SlotSize {
				return Puzzle{}, fmt.Errorf("line %d: %w: shape %d exceeds %dx%d", i+1, ErrMalformedShape, cur.Index, SlotSize, SlotSize)
			}
			cur.Rows = append(cur.Rows, line)
		}
	}

	if len(p.Shapes) > 0 {
		for i, r := range p.Regions {
			if len(r.Counts) != len(p.Shapes) {
				return Puzzle{}, fmt.Errorf("region %d: %w: %d counts for %d shapes", i, ErrMalformedRegion, len(r.Counts), len(p.Shapes))
			}
		}
	}
	return p, nil
}

func isRegionLine(line string) bool {
	head, _, ok := strings.Cut(line, ":")
	return ok && strings.Contains(head, "x")
}

func parseRegion(line string) (Region, error) {
	head, tail, _ := strings.Cut(line, ":")
	wStr, hStr, _ := strings.Cut(head, "x")
	w, errW := strconv.Atoi(strings.TrimSpace(wStr))
	h, errH := strconv.Atoi(strings.TrimSpace(hStr))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Region{}, fmt.Errorf("%w: size %q", ErrMalformedRegion, head)
	}
	fields := strings.Fields(tail)
	counts := make([]int, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil || c < 0 {
			return Region{}, fmt.Errorf("%w: count %q", ErrMalformedRegion, f)
		}
		counts[i] = c
	}
	return Region{Width: w, Height: h, Counts: counts}, nil
}

// Verdict classifies a region.
type Verdict int

const (
	Undecided Verdict = iota
	Fits
	Impossible
)

func (v Verdict) String() string {
	switch v {
	case Fits:
		return "fits"
	case Impossible:
		return "impossible"
	default:
		return "undecided"
	}
}

// Classify returns Fits when the region has the area of one 3x3 slot per
// present, Impossible when the presents' occupied cells exceed the area,
// and Undecided otherwise. Without shapes only Fits and Undecided are
// possible.
func (p Puzzle) Classify(r Region) Verdict {
	if SlotSize*SlotSize*r.Presents() <= r.Area() {
		return Fits
	}
	if len(p.Shapes) == len(r.Counts) {
		cells := 0
		for i, c := range r.Counts {
			cells += c * p.Shapes[i].Cells()
		}
		if cells > r.Area() {
			return Impossible
		}
	}
	return Undecided
}

// Summary counts regions per verdict.
type Summary struct {
	Fits, Impossible, Undecided int
}

// CountFits classifies every region.
func CountFits(p Puzzle) Summary {
	var s Summary
	for _, r := range p.Regions {
		switch p.Classify(r) {
		case Fits:
			s.Fits++
		case Impossible:
			s.Impossible++
		default:
			s.Undecided++
		}
	}
	return s
}
