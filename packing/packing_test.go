package packing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0:
###
##.
##.

1:
###
##.
.##

2:
.##
###
##.

3:
##.
###
##.

4:
###
#..
###

5:
###
.#.
###

4x4: 0 0 0 0 2 0
12x5: 1 0 1 0 2 2
12x5: 1 0 1 0 3 2
3x3: 0 0 0 0 2 0
`

func parse(t *testing.T, s string) Puzzle {
	t.Helper()
	p, err := Parse(strings.Split(s, "\n"))
	require.NoError(t, err)
	return p
}

func TestParseSample(t *testing.T) {
	p := parse(t, sample)
	require.Len(t, p.Shapes, 6)
	require.Len(t, p.Regions, 4)

	assert.Equal(t, []string{"###", "#..", "###"}, p.Shapes[4].Rows)
	assert.Equal(t, 7, p.Shapes[4].Cells())
	assert.Equal(t, Region{Width: 12, Height: 5, Counts: []int{1, 0, 1, 0, 2, 2}}, p.Regions[1])
	assert.Equal(t, 60, p.Regions[1].Area())
	assert.Equal(t, 6, p.Regions[1].Presents())
}

func TestClassify(t *testing.T) {
	p := parse(t, sample)
	want := []Verdict{Undecided, Fits, Undecided, Impossible}
	for i, r := range p.Regions {
		assert.Equal(t, want[i], p.Classify(r), "region %d (%dx%d)", i, r.Width, r.Height)
	}
	assert.Equal(t, Summary{Fits: 1, Impossible: 1, Undecided: 2}, CountFits(p))
}

func TestRegionsWithoutShapes(t *testing.T) {
	p := parse(t, "6x6: 4\n6x6: 5\n")
	assert.Empty(t, p.Shapes)
	assert.Equal(t, Summary{Fits: 1, Undecided: 1}, CountFits(p))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "row without header", in: "###\n", want: ErrMalformedShape},
		{name: "header out of order", in: "1:\n###\n", want: ErrMalformedShape},
		{name: "bad cell", in: "0:\n#x#\n", want: ErrMalformedShape},
		{name: "too many rows", in: "0:\n###\n###\n###\n###\n", want: ErrMalformedShape},
		{name: "too wide", in: "0:\n####\n", want: ErrMalformedShape},
		{name: "bad size", in: "4xz: 1\n", want: ErrMalformedRegion},
		{name: "negative count", in: "4x4: -1\n", want: ErrMalformedRegion},
		{name: "count mismatch", in: "0:\n###\n\n4x4: 1 2\n", want: ErrMalformedRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.Split(tt.in, "\n"))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "fits", Fits.String())
	assert.Equal(t, "impossible", Impossible.String())
	assert.Equal(t, "undecided", Undecided.String())
}
