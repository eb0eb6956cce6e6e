// Package input loads puzzle inputs and splits them into tokens.
//
// Inputs live in a single directory as dayNN.txt files. A path of "-"
// reads standard input instead.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrNoInput is returned when an input file does not exist.
var ErrNoInput = errors.New("no puzzle input")

// Path returns the conventional location of a day's input inside dir.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// Load reads the input for day from dir.
func Load(dir string, day int) ([]byte, error) {
	return Open(Path(dir, day))
}

// Open reads the file at path, or standard input when path is Stdin.
func Open(path string) ([]byte, error) {
	if path == Stdin {
		return ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoInput, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ReadAll drains r.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// Fields splits data into whitespace-separated tokens.
func Fields(data []byte) ([]string, error) {
	return scanFields(bytes.NewReader(data), len(data)+1)
}

// scanFields tokenizes r, allowing tokens of up to maxToken bytes.
func scanFields(r io.Reader, maxToken int) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(maxToken, 64*1024)), maxToken)
	s.Split(bufio.ScanWords)

	var out []string
	for s.Scan() {
		out = append(out, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to split input: %w", err)
	}
	return out, nil
}

// Lines splits data into lines without their terminators. Trailing blank
// lines are dropped; blank lines in the middle are kept because some
// inputs use them as section separators.
func Lines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n \t")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Split trims surrounding whitespace and splits data on sep, dropping
// empty items.
func Split(data []byte, sep string) []string {
	var out []string
	for _, item := range strings.Split(strings.TrimSpace(string(data)), sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
