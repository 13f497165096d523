// Package almanac follows seeds through a chain of category maps.
//
// Input starts with "seeds: <n> <n> ...", followed by blocks headed
// "<from>-to-<to> map:" whose lines read "<dest start> <source start> <length>".
// Values not covered by any range of a map keep their number.
package almanac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for almanac parsing.
var (
	// ErrMissingSeeds indicates the input has no seeds line.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")
	// ErrMalformedLine indicates a line that fits no part of the grammar.
	ErrMalformedLine = errors.New("almanac: malformed line")
	// ErrOddSeedCount indicates seed ranges cannot be paired up.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
)

// Range maps [Src, Src+Len) onto [Dest, Dest+Len).
type Range struct {
	Dest, Src, Len int
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start, End int
}

// Map is one category conversion.
type Map struct {
	Name   string
	Ranges []Range
}

// Apply converts a single value.
func (m Map) Apply(v int) int {
	for _, r := range m.Ranges {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dest + v - r.Src
		}
	}
	return v
}

// ApplyIntervals converts whole spans, splitting them at range boundaries.
// Parts not covered by any range pass through unchanged.
func (m Map) ApplyIntervals(in []Interval) []Interval {
	var out []Interval
	pending := append([]Interval(nil), in...)
	for _, r := range m.Ranges {
		lo, hi := r.Src, r.Src+r.Len
		shift := r.Dest - r.Src
		var rest []Interval
		for _, iv := range pending {
			if iv.Start < lo {
				rest = append(rest, Interval{iv.Start, min(iv.End, lo)})
			}
			if s, e := max(iv.Start, lo), min(iv.End, hi); s < e {
				out = append(out, Interval{s + shift, e + shift})
			}
			if iv.End > hi {
				rest = append(rest, Interval{max(iv.Start, hi), iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Almanac is the parsed input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Parse reads the seeds line and every map block.
func Parse(lines []string) (*Almanac, error) {
	a := &Almanac{}
	seen := false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "seeds:"):
			seeds, err := parseInts(strings.TrimPrefix(line, "seeds:"))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			a.Seeds = append(a.Seeds, seeds...)
			seen = true
		case strings.HasSuffix(line, " map:"):
			a.Maps = append(a.Maps, Map{Name: strings.TrimSuffix(line, " map:")})
		default:
			vals, err := parseInts(line)
			if err != nil || len(vals) != 3 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
			}
			if len(a.Maps) == 0 {
				return nil, fmt.Errorf("%w: line %d: range before any map header", ErrMalformedLine, i+1)
			}
			last := &a.Maps[len(a.Maps)-1]
			last.Ranges = append(last.Ranges, Range{Dest: vals[0], Src: vals[1], Len: vals[2]})
		}
	}
	if !seen {
		return nil, ErrMissingSeeds
	}
	return a, nil
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrMalformedLine, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Location runs v through every map in order.
func (a *Almanac) Location(v int) int {
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// SeedIntervals reads Seeds as (start, length) pairs.
func (a *Almanac) SeedIntervals() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] <= 0 {
			continue
		}
		out = append(out, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// LocationIntervals runs whole spans through every map in order.
func (a *Almanac) LocationIntervals(in []Interval) []Interval {
	for _, m := range a.Maps {
		in = m.ApplyIntervals(in)
	}
	return in
}

// Part1 returns the lowest location of any listed seed.
func Part1(lines []string) (int, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, ErrMissingSeeds
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// Part2 returns the lowest location of any seed in the seed ranges.
func Part2(lines []string) (int, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedIntervals()
	if err != nil {
		return 0, err
	}
	locs := a.LocationIntervals(seeds)
	if len(locs) == 0 {
		return 0, ErrMissingSeeds
	}
	best := locs[0].Start
	for _, iv := range locs[1:] {
		best = min(best, iv.Start)
	}
	return best, nil
}
