// Package lineio reads puzzle input as an ordered list of lines.
//
// Line terminators ("\n" or "\r\n") are removed. A terminator at the very end
// of the input does not produce an extra empty line; blank lines in the middle
// of the input are preserved because several puzzles use them as separators.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrLineTooLong is returned when a single line exceeds MaxLineSize.
var ErrLineTooLong = errors.New("lineio: line exceeds maximum size")

// MaxLineSize bounds the length of a single input line.
const MaxLineSize = 1 << 20

// Read consumes r and returns its lines.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w (line %d)", ErrLineTooLong, len(lines)+1)
		}
		return nil, fmt.Errorf("lineio: read: %w", err)
	}
	return lines, nil
}

// ReadFile opens path and returns its lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lineio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Split returns the lines of an in-memory text, with the same rules and
// errors as Read.
func Split(text string) ([]string, error) {
	return Read(strings.NewReader(text))
}
