package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

// ParseMaze builds a Maze from input lines, one row per line.
// Returns grid.ErrEmptyGrid or grid.ErrNonRectangular for malformed shapes,
// ErrUnknownSymbol for characters outside the pipe alphabet, and
// ErrMissingEntrance or ErrMultipleEntrances unless exactly one S exists.
func ParseMaze(lines []string) (*Maze, error) {
	rows := make([][]Pipe, len(lines))
	for y, line := range lines {
		rows[y] = make([]Pipe, len(line))
		for x := 0; x < len(line); x++ {
			p, err := ParsePipe(line[x])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			rows[y][x] = p
		}
	}
	g, err := grid.New(rows, grid.Conn4)
	if err != nil {
		return nil, err
	}

	entrances := g.Find(func(p Pipe) bool { return p == Entrance })
	switch len(entrances) {
	case 0:
		return nil, ErrMissingEntrance
	case 1:
		return &Maze{Grid: g, Entrance: entrances[0]}, nil
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleEntrances, len(entrances))
	}
}
