package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func New[T any](rows [][]T, conn Connectivity) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], rows[y])
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &Grid[T]{
		Width:   w,
		Height:  h,
		cells:   cells,
		offsets: offsets,
	}, nil
}

// FromLines builds a byte grid with one row per line.
func FromLines(lines []string, conn Connectivity) (*Grid[byte], error) {
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}
	return New(rows, conn)
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. The caller must check InBounds first.
func (g *Grid[T]) At(p Point) T {
	return g.cells[p.Y][p.X]
}

// Get returns the cell at p and whether p is in bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y][p.X], true
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	out := make([]T, g.Width)
	copy(out, g.cells[y])
	return out
}

// Neighbors returns the in-bounds neighbors of p, clockwise from north.
func (g *Grid[T]) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns every point whose cell satisfies match, in row-major order.
func (g *Grid[T]) Find(match func(T) bool) []Point {
	var out []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if match(g.cells[y][x]) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Index maps p to a row-major index: y*Width + x.
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
