package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, grid.Conn4)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures mutating the source rows does not change the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(rows, grid.Conn4)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1, g.At(grid.Point{X: 0, Y: 0}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.FromLines([]string{"abc", "def"}, grid.Conn4)
	require.NoError(t, err)

	for _, p := range []grid.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Neighbors, Get and Find Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 verifies orthogonal neighbors are clipped at the border.
func TestNeighbors_Conn4(t *testing.T) {
	g, err := grid.FromLines([]string{"...", "...", "..."}, grid.Conn4)
	require.NoError(t, err)

	assert.Equal(t, []grid.Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, g.Neighbors(grid.Point{X: 1, Y: 1}))
	assert.Equal(t, []grid.Point{{1, 0}, {0, 1}}, g.Neighbors(grid.Point{X: 0, Y: 0}))
}

// TestNeighbors_Conn8 verifies diagonals are included under Conn8.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := grid.FromLines([]string{"...", "...", "..."}, grid.Conn8)
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(grid.Point{X: 1, Y: 1}), 8)
	assert.Equal(t, []grid.Point{{1, 0}, {1, 1}, {0, 1}}, g.Neighbors(grid.Point{X: 0, Y: 0}))
}

// TestGet reports out-of-bounds lookups instead of panicking.
func TestGet(t *testing.T) {
	g, err := grid.FromLines([]string{"ab", "cd"}, grid.Conn4)
	require.NoError(t, err)

	v, ok := g.Get(grid.Point{X: 1, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, byte('d'), v)

	_, ok = g.Get(grid.Point{X: 2, Y: 0})
	assert.False(t, ok)
}

// TestFind returns matches in row-major order.
func TestFind(t *testing.T) {
	g, err := grid.FromLines([]string{"#.#", "..#"}, grid.Conn4)
	require.NoError(t, err)

	got := g.Find(func(b byte) bool { return b == '#' })
	assert.Equal(t, []grid.Point{{0, 0}, {2, 0}, {2, 1}}, got)
}

// TestIndexCoordinate round-trips every cell of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.FromLines([]string{"abcd", "efgh", "ijkl"}, grid.Conn4)
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			assert.Equal(t, p, g.Coordinate(g.Index(p)))
		}
	}
	assert.Equal(t, 6, g.Index(grid.Point{X: 2, Y: 1}))
}
