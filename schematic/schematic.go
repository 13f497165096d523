// Package schematic reads part numbers off an engine schematic.
//
// The schematic is a character grid of digits, '.' for empty space and any
// other character as a symbol. A number is a horizontal run of digits; it is
// a part number when a symbol touches any of its digits, diagonals included.
package schematic

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2023/grid"
)

// Gear is the symbol whose neighbors form gear ratios.
const Gear = '*'

// Number is a run of digits on one row.
type Number struct {
	Value      int
	Row        int
	Start, End int // inclusive column span
}

// Schematic is a parsed engine schematic.
type Schematic struct {
	*grid.Grid[byte]
	Numbers []Number
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSymbol reports whether b marks a symbol cell.
func IsSymbol(b byte) bool { return !isDigit(b) && b != '.' }

// Parse builds a Schematic and extracts its numbers in reading order.
func Parse(lines []string) (*Schematic, error) {
	g, err := grid.FromLines(lines, grid.Conn8)
	if err != nil {
		return nil, fmt.Errorf("schematic: %w", err)
	}
	s := &Schematic{Grid: g}
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := Number{Row: y, Start: x}
			for x < len(row) && isDigit(row[x]) {
				n.Value = n.Value*10 + int(row[x]-'0')
				x++
			}
			n.End = x - 1
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s, nil
}

// Adjacent returns the symbol cells touching n, each once, in row-major order.
func (s *Schematic) Adjacent(n Number) []grid.Point {
	seen := make(map[grid.Point]bool)
	var out []grid.Point
	for x := n.Start; x <= n.End; x++ {
		for _, q := range s.Neighbors(grid.Point{X: x, Y: n.Row}) {
			if !seen[q] && IsSymbol(s.At(q)) {
				seen[q] = true
				out = append(out, q)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.Index(out[i]) < s.Index(out[j])
	})
	return out
}

// PartNumbers returns the numbers touching at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range s.Numbers {
		if len(s.Adjacent(n)) > 0 {
			out = append(out, n)
		}
	}
	return out
}

// GearRatios returns, for each gear touching exactly two numbers, the product
// of those numbers, in reading order of the gears.
func (s *Schematic) GearRatios() []int {
	touching := make(map[grid.Point][]int)
	for _, n := range s.Numbers {
		for _, q := range s.Adjacent(n) {
			if s.At(q) == Gear {
				touching[q] = append(touching[q], n.Value)
			}
		}
	}
	gears := make([]grid.Point, 0, len(touching))
	for p := range touching {
		gears = append(gears, p)
	}
	sort.Slice(gears, func(i, j int) bool {
		return s.Index(gears[i]) < s.Index(gears[j])
	})

	var ratios []int
	for _, p := range gears {
		if vals := touching[p]; len(vals) == 2 {
			ratios = append(ratios, vals[0]*vals[1])
		}
	}
	return ratios
}

// Part1 sums all part numbers.
func Part1(lines []string) (int, error) {
	s, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.PartNumbers() {
		sum += n.Value
	}
	return sum, nil
}

// Part2 sums all gear ratios.
func Part2(lines []string) (int, error) {
	s, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range s.GearRatios() {
		sum += r
	}
	return sum, nil
}
