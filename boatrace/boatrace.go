// Package boatrace counts the ways to win toy boat races.
//
// Holding the button for h milliseconds of a t millisecond race moves the
// boat h*(t-h) millimeters. A race is won by beating its record distance.
package boatrace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedInput indicates the input is not a Time line followed by a Distance line.
var ErrMalformedInput = errors.New("boatrace: malformed input")

// Race is one race with its time limit and record distance.
type Race struct {
	Time, Record int
}

func (r Race) beats(hold int) bool {
	return hold*(r.Time-hold) > r.Record
}

// Ways returns how many whole hold times beat the record.
//
// Winning hold times form the interval [lo, Time-lo] around Time/2. lo is
// estimated from the quadratic root and then corrected with exact integer
// checks, so no brute-force scan is needed.
func (r Race) Ways() int {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	lo := max(1, int(math.Floor((float64(r.Time)-math.Sqrt(disc))/2)))
	for lo > 1 && r.beats(lo-1) {
		lo--
	}
	half := r.Time / 2
	for lo <= half && !r.beats(lo) {
		lo++
	}
	if lo > half {
		return 0
	}
	return r.Time - 2*lo + 1
}

func valuesAfter(line, label string) ([]string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), label+":")
	if !ok {
		return nil, fmt.Errorf("%w: expected %q line, got %q", ErrMalformedInput, label, line)
	}
	return strings.Fields(rest), nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrMalformedInput, s)
	}
	return n, nil
}

func readColumns(lines []string) (times, records []string, err error) {
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: need 2 lines, got %d", ErrMalformedInput, len(lines))
	}
	if times, err = valuesAfter(lines[0], "Time"); err != nil {
		return nil, nil, err
	}
	if records, err = valuesAfter(lines[1], "Distance"); err != nil {
		return nil, nil, err
	}
	if len(times) != len(records) {
		return nil, nil, fmt.Errorf("%w: %d times but %d distances", ErrMalformedInput, len(times), len(records))
	}
	return times, records, nil
}

// ParseRaces reads one race per column.
func ParseRaces(lines []string) ([]Race, error) {
	times, records, err := readColumns(lines)
	if err != nil {
		return nil, err
	}
	races := make([]Race, len(times))
	for i := range times {
		if races[i].Time, err = atoi(times[i]); err != nil {
			return nil, err
		}
		if races[i].Record, err = atoi(records[i]); err != nil {
			return nil, err
		}
	}
	return races, nil
}

// ParseKerned reads the columns as a single race, ignoring the spaces.
func ParseKerned(lines []string) (Race, error) {
	times, records, err := readColumns(lines)
	if err != nil {
		return Race{}, err
	}
	var r Race
	if r.Time, err = atoi(strings.Join(times, "")); err != nil {
		return Race{}, err
	}
	if r.Record, err = atoi(strings.Join(records, "")); err != nil {
		return Race{}, err
	}
	return r, nil
}

// Part1 multiplies the number of ways to win each race.
func Part1(lines []string) (int, error) {
	races, err := ParseRaces(lines)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

// Part2 counts the ways to win the single kerned race.
func Part2(lines []string) (int, error) {
	r, err := ParseKerned(lines)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
