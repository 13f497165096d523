package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

// tracer encapsulates mutable walk state for a single Trace call.
type tracer struct {
	maze *Maze
	opts TraceOptions
	loop *Loop
}

// Trace walks the loop that passes through the maze entrance.
//
// At every cell it moves to the first neighbor, in Directions order, that is
// inside the maze, not yet on the path and connected to the current cell.
// The entrance is the only cell that may be entered twice: doing so from any
// cell other than its first successor closes the loop.
//
// Returns ErrNilMaze, ErrBrokenLoop if the walk dead-ends before closing, or
// ErrAmbiguousEntranceShape unless exactly two neighbors open toward the entrance.
func Trace(m *Maze, opts ...Option) (*Loop, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &tracer{
		maze: m,
		opts: o,
		loop: &Loop{
			entrance: m.Entrance,
			cells:    make(map[grid.Point]Pipe),
		},
	}
	if err := t.walk(); err != nil {
		return nil, err
	}
	shape, err := t.resolveEntrance()
	if err != nil {
		return nil, err
	}
	t.loop.EntranceShape = shape
	t.loop.cells[m.Entrance] = shape

	return t.loop, nil
}

// walk appends cells to the path until the entrance is reached again.
func (t *tracer) walk() error {
	cur := t.maze.Entrance
	for {
		t.visit(cur)
		next, ok := t.next(cur)
		if !ok {
			return fmt.Errorf("%w: dead end at %v after %d cells", ErrBrokenLoop, cur, len(t.loop.Path))
		}
		if next == t.maze.Entrance {
			return nil
		}
		cur = next
	}
}

// visit records p on the path and in the trace map, then calls OnStep.
func (t *tracer) visit(p grid.Point) {
	pipe := t.maze.At(p)
	t.opts.OnStep(p, pipe, len(t.loop.Path))
	t.loop.cells[p] = pipe
	t.loop.Path = append(t.loop.Path, p)
}

// next picks the successor of cur, or reports false at a dead end.
func (t *tracer) next(cur grid.Point) (grid.Point, bool) {
	src := t.maze.At(cur)
	for _, d := range Directions {
		q := cur.Add(d.Offset())
		dst, ok := t.maze.Get(q)
		if !ok {
			continue
		}
		if _, seen := t.loop.cells[q]; seen && !t.closes(q) {
			continue
		}
		if Connects(src, dst, d) {
			return q, true
		}
	}
	return grid.Point{}, false
}

// closes reports whether stepping onto q finishes the loop. Returning to the
// entrance right after leaving it would be a two-cell back-and-forth.
func (t *tracer) closes(q grid.Point) bool {
	return q == t.maze.Entrance && len(t.loop.Path) > 2
}

// resolveEntrance infers the entrance shape from the maze cells around it.
// Every neighbor opening toward the entrance counts, on the loop or not.
func (t *tracer) resolveEntrance() (Pipe, error) {
	e := t.maze.Entrance
	var dirs DirectionSet
	for _, d := range Directions {
		pipe, ok := t.maze.Get(e.Add(d.Offset()))
		if ok && Connects(Entrance, pipe, d) {
			dirs = dirs.With(d)
		}
	}
	return ResolveShape(dirs)
}

// ResolveShape returns the pipe whose openings are exactly dirs.
// Returns ErrAmbiguousEntranceShape unless dirs holds exactly two directions.
func ResolveShape(dirs DirectionSet) (Pipe, error) {
	if dirs.Len() == 2 {
		for _, p := range Pipes {
			if p != Entrance && p.Openings() == dirs {
				return p, nil
			}
		}
	}
	return Ground, fmt.Errorf("%w: entrance joins %v", ErrAmbiguousEntranceShape, dirs)
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.Path)
}

// Steps returns the distance, along the loop, from the entrance to the
// farthest loop cell: half the loop length, rounded up.
func (l *Loop) Steps() int {
	return (len(l.Path) + 1) / 2
}

// Entrance returns the point where the trace started.
func (l *Loop) Entrance() grid.Point {
	return l.entrance
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p grid.Point) bool {
	_, ok := l.cells[p]
	return ok
}

// PipeAt returns the trace map cell at p: the loop pipe, with the entrance
// replaced by its resolved shape, or Ground for any cell off the loop.
func (l *Loop) PipeAt(p grid.Point) Pipe {
	return l.cells[p]
}
