package pipemaze

import (
	"errors"

	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for maze loading and loop tracing.
var (
	// ErrUnknownSymbol indicates a character outside the pipe alphabet.
	ErrUnknownSymbol = errors.New("pipemaze: unknown pipe symbol")
	// ErrMissingEntrance indicates the maze holds no entrance marker.
	ErrMissingEntrance = errors.New("pipemaze: entrance not found")
	// ErrMultipleEntrances indicates more than one entrance marker.
	ErrMultipleEntrances = errors.New("pipemaze: more than one entrance")
	// ErrBrokenLoop indicates the walk hit a dead end before closing.
	ErrBrokenLoop = errors.New("pipemaze: loop is broken")
	// ErrAmbiguousEntranceShape indicates other than two neighbors open toward the entrance.
	ErrAmbiguousEntranceShape = errors.New("pipemaze: entrance shape is ambiguous")
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("pipemaze: maze is nil")
)

// Maze is a parsed pipe grid with its single entrance. It is immutable once built.
type Maze struct {
	*grid.Grid[Pipe]
	Entrance grid.Point
}

// StepFunc observes one tracer step: the cell entered, its symbol in the
// source maze and its zero-based position along the path.
type StepFunc func(p grid.Point, pipe Pipe, index int)

// Option configures Trace via functional arguments.
type Option func(*TraceOptions)

// TraceOptions holds the hooks applied during a trace.
type TraceOptions struct {
	// OnStep is called once per cell appended to the path.
	OnStep StepFunc
}

// DefaultOptions returns TraceOptions with a no-op OnStep.
func DefaultOptions() TraceOptions {
	return TraceOptions{
		OnStep: func(grid.Point, Pipe, int) {},
	}
}

// WithOnStep registers a hook called for every visited cell.
func WithOnStep(fn StepFunc) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Loop is the result of a successful trace.
type Loop struct {
	// Path lists the loop cells in visitation order, starting at the
	// entrance. The closing step back to the entrance is implicit.
	Path []grid.Point
	// EntranceShape is the pipe hidden under the entrance marker.
	EntranceShape Pipe

	entrance grid.Point
	cells    map[grid.Point]Pipe
}

// Result holds both answers for a maze.
type Result struct {
	Steps int
	Area  int
}
