package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

// Direction is the position of a neighbor cell relative to a source cell.
// The declaration order is the tracer's preference order.
type Direction uint8

const (
	Left Direction = iota
	Bottom
	Right
	Top
)

// Directions lists every Direction in tracing priority order.
var Directions = [...]Direction{Left, Bottom, Right, Top}

var directionOffsets = [...]grid.Point{
	Left:   {X: -1, Y: 0},
	Bottom: {X: 0, Y: 1},
	Right:  {X: 1, Y: 0},
	Top:    {X: 0, Y: -1},
}

// Offset returns the unit step toward d.
func (d Direction) Offset() grid.Point {
	return directionOffsets[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Top:
		return "top"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionSet is a bitmask of directions.
type DirectionSet uint8

// NewDirectionSet returns a set holding ds.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// With returns s plus d.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

// Has reports whether d is in s.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of directions in s.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

func (s DirectionSet) String() string {
	out := "{"
	for _, d := range Directions {
		if !s.Has(d) {
			continue
		}
		if len(out) > 1 {
			out += ","
		}
		out += d.String()
	}
	return out + "}"
}

// Pipe is one cell of the maze.
type Pipe uint8

const (
	Ground           Pipe = iota // .
	Vertical                     // |
	Horizontal                   // -
	ElbowTopRight                // L
	ElbowTopLeft                 // J
	ElbowBottomLeft              // 7
	ElbowBottomRight             // F
	Entrance                     // S
)

// Pipes lists every Pipe value.
var Pipes = [...]Pipe{Ground, Vertical, Horizontal, ElbowTopRight, ElbowTopLeft, ElbowBottomLeft, ElbowBottomRight, Entrance}

var pipeSymbols = [...]byte{
	Ground:           '.',
	Vertical:         '|',
	Horizontal:       '-',
	ElbowTopRight:    'L',
	ElbowTopLeft:     'J',
	ElbowBottomLeft:  '7',
	ElbowBottomRight: 'F',
	Entrance:         'S',
}

var pipeOpenings = [...]DirectionSet{
	Ground:           0,
	Vertical:         NewDirectionSet(Top, Bottom),
	Horizontal:       NewDirectionSet(Left, Right),
	ElbowTopRight:    NewDirectionSet(Top, Right),
	ElbowTopLeft:     NewDirectionSet(Top, Left),
	ElbowBottomLeft:  NewDirectionSet(Bottom, Left),
	ElbowBottomRight: NewDirectionSet(Bottom, Right),
	Entrance:         NewDirectionSet(Left, Bottom, Right, Top),
}

// ParsePipe maps an input symbol to its Pipe.
func ParsePipe(b byte) (Pipe, error) {
	for p, sym := range pipeSymbols {
		if sym == b {
			return Pipe(p), nil
		}
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
}

// Symbol returns the input character for p.
func (p Pipe) Symbol() byte {
	return pipeSymbols[p]
}

func (p Pipe) String() string {
	return string(p.Symbol())
}

// Openings returns the directions p opens toward. The entrance opens
// toward every direction since its real shape is unknown.
func (p Pipe) Openings() DirectionSet {
	return pipeOpenings[p]
}

// Connects reports whether src joins dst, the neighbor lying toward dir
// from src. Both cells must open toward each other.
func Connects(src, dst Pipe, dir Direction) bool {
	return src.Openings().Has(dir) && dst.Openings().Has(dir.Opposite())
}
