package pipemaze

import (
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/mathx"
)

// InteriorCount returns the number of lattice cells strictly enclosed by the
// closed polygon whose vertices are path, in order.
//
// The doubled area comes from the shoelace sum in exact integer arithmetic;
// the interior count then follows Pick's theorem, I = A - ceil(B/2) + 1,
// with B the number of path vertices.
// Paths with fewer than four vertices enclose nothing.
func InteriorCount(path []grid.Point) int {
	n := len(path)
	if n < 4 {
		return 0
	}
	twice := 0
	for i, p := range path {
		q := path[(i+1)%n]
		twice += p.X*q.Y - q.X*p.Y
	}
	interior := mathx.Abs(twice)/2 - (n+1)/2 + 1
	if interior < 0 {
		return 0
	}
	return interior
}

// Area returns InteriorCount of the loop path.
func (l *Loop) Area() int {
	return InteriorCount(l.Path)
}

// ScanInterior counts enclosed cells row by row using crossing parity over
// the trace map. A loop cell opening toward Top flips inside/outside; every
// off-loop cell seen while inside is enclosed. Clutter pipes that are not on
// the loop count as ordinary cells.
func (l *Loop) ScanInterior(m *Maze) int {
	count, inside := 0, false
	for i := 0; i < m.Width*m.Height; i++ {
		p := m.Coordinate(i)
		if p.X == 0 {
			inside = false
		}
		if !l.Contains(p) {
			if inside {
				count++
			}
			continue
		}
		if l.PipeAt(p).Openings().Has(Top) {
			inside = !inside
		}
	}
	return count
}
