package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day03.txt"), Path("inputs", 3))
	assert.Equal(t, filepath.Join("x", "day12.txt"), Path("x", 12))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("L68\nR48\n"), 0o600))

	data, err := Load(dir, 1)
	require.NoError(t, err)
	got, err := Fields(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"L68", "R48"}, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "newlines", in: "987\n811\n", want: []string{"987", "811"}},
		{name: "mixed whitespace", in: "  12\t34\r\n\n56 ", want: []string{"12", "34", "56"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fields([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsLongToken(t *testing.T) {
	long := make([]byte, 200*1024)
	for i := range long {
		long[i] = '7'
	}
	got, err := Fields(append(long, '\n'))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], len(long))
}

func TestScanFieldsErrors(t *testing.T) {
	boom := errors.New("boom")
	got, err := scanFields(io.MultiReader(strings.NewReader("12 34 "), iotest.ErrReader(boom)), 64)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)

	got, err = scanFields(strings.NewReader("1 22222222 3"), 4)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Nil(t, got)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines([]byte("\n\n")))
	assert.Equal(t, []string{"0:", "###", "", "4x4: 0 1"}, Lines([]byte("0:\r\n###\n\n4x4: 0 1\n\n")))
}

func TestSplit(t *testing.T) {
	got := Split([]byte("11-22,95-115,\n"), ",")
	assert.Equal(t, []string{"11-22", "95-115"}, got)
	assert.Nil(t, Split([]byte("  "), ","))
}
