// Package oasis extrapolates integer sequences through their difference
// tables.
package oasis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHistory indicates a line that is not a list of integers.
var ErrMalformedHistory = errors.New("oasis: malformed history")

// ParseHistory reads whitespace-separated integers.
func ParseHistory(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedHistory)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedHistory, f, err)
		}
		out[i] = v
	}
	return out, nil
}

// Differences returns the pairwise deltas of seq, one shorter than seq.
func Differences(seq []int) []int {
	if len(seq) < 2 {
		return nil
	}
	out := make([]int, len(seq)-1)
	for i := range out {
		out[i] = seq[i+1] - seq[i]
	}
	return out
}

func allZero(seq []int) bool {
	for _, v := range seq {
		if v != 0 {
			return false
		}
	}
	return true
}

// Next predicts the value following seq. The table is reduced until a row
// is all zeros or runs out; last elements are then summed back up.
func Next(seq []int) int {
	next := 0
	for row := seq; len(row) > 0 && !allZero(row); row = Differences(row) {
		next += row[len(row)-1]
	}
	return next
}

// Prev predicts the value preceding seq.
func Prev(seq []int) int {
	prev, sign := 0, 1
	for row := seq; len(row) > 0 && !allZero(row); row = Differences(row) {
		prev += sign * row[0]
		sign = -sign
	}
	return prev
}

func sum(lines []string, predict func([]int) int) (int, error) {
	total := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seq, err := ParseHistory(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += predict(seq)
	}
	return total, nil
}

// Part1 sums the forward extrapolations.
func Part1(lines []string) (int, error) { return sum(lines, Next) }

// Part2 sums the backward extrapolations.
func Part2(lines []string) (int, error) { return sum(lines, Prev) }
