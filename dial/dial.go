// Package dial simulates the safe dial: a ring of positions 0..99 turned
// left or right by a rotation list, counting how often it points at 0.
package dial

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// Size is the number of positions on the dial.
	Size = 100
	// Start is where the dial points before the first rotation.
	Start = 50
)

// ErrMalformedRotation reports a token that is not L<n> or R<n>.
var ErrMalformedRotation = errors.New("malformed rotation")

// Direction of a rotation. Left turns toward lower numbers.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Rotation is a single instruction such as "L68".
type Rotation struct {
	Dir    Direction
	Clicks int
}

func (r Rotation) String() string {
	return string(r.Dir) + strconv.Itoa(r.Clicks)
}

// ParseRotation parses one "L<n>" or "R<n>" token.
func ParseRotation(tok string) (Rotation, error) {
	if len(tok) < 2 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrMalformedRotation, tok)
	}
	dir := Direction(tok[0])
	if dir != Left && dir != Right {
		return Rotation{}, fmt.Errorf("%w: %q: unknown direction", ErrMalformedRotation, tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || tok[1] == '+' || tok[1] == '-' {
		return Rotation{}, fmt.Errorf("%w: %q: bad click count", ErrMalformedRotation, tok)
	}
	return Rotation{Dir: dir, Clicks: n}, nil
}

// ParseRotations parses every token in order.
func ParseRotations(tokens []string) ([]Rotation, error) {
	rots := make([]Rotation, 0, len(tokens))
	for i, tok := range tokens {
		r, err := ParseRotation(tok)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", i, err)
		}
		rots = append(rots, r)
	}
	return rots, nil
}

// Dial tracks the current position. The zero value points at 0; use New
// for the puzzle's starting position.
type Dial struct {
	pos int
}

// New returns a dial pointing at Start.
func New() *Dial {
	return &Dial{pos: Start}
}

// Position returns where the dial points.
func (d *Dial) Position() int { return d.pos }

// Turn applies r and returns how many clicks landed the dial on 0,
// including the final one. Moving off 0 is not counted.
func (d *Dial) Turn(r Rotation) int {
	// Every full lap passes 0 exactly once; only the remainder needs
	// sector arithmetic, which keeps the sums far from overflow.
	laps, rest := r.Clicks/Size, r.Clicks%Size
	if r.Dir == Right {
		wraps, pos := divmod(d.pos+rest, Size)
		d.pos = pos
		return laps + wraps
	}

	// Left turns are counted on the shifted ring pos-1 so that ending
	// exactly on 0 falls into a new sector.
	startSector := 0
	if d.pos == 0 {
		startSector = -1
	}
	endSector, rem := divmod(d.pos-1-rest, Size)
	if rem == Size-1 {
		d.pos = 0
	} else {
		d.pos = rem + 1
	}
	return laps + startSector - endSector
}

// Tally holds both puzzle answers.
type Tally struct {
	// AtZero counts rotations that end on 0.
	AtZero int
	// Clicks counts every click that lands on 0, mid-rotation or not.
	Clicks int
}

// Count runs rots on a fresh dial.
func Count(rots []Rotation) Tally {
	var t Tally
	d := New()
	for _, r := range rots {
		t.Clicks += d.Turn(r)
		if d.pos == 0 {
			t.AtZero++
		}
	}
	return t
}

// divmod is floored division, matching the mathematical modulo for
// negative dividends.
func divmod(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
