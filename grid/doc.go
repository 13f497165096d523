// Package grid treats a rectangular 2D slice of cells as an immutable,
// coordinate-addressable board.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T with 4- or 8-neighbor adjacency.
//   - FromLines builds a Grid[byte] from puzzle input lines.
//   - Neighbors yields in-bounds neighbors in a fixed, reproducible order.
//   - Index/Coordinate convert between points and row-major indices.
//
// Why:
//
//   - Character maps (engine schematics, pipe mazes) share the same bounds
//     checks and neighbor scans; keeping them here keeps puzzle code focused
//     on the puzzle.
//
// Complexity:
//
//   - New, FromLines: O(W×H) time and memory (deep copy).
//   - InBounds, At, Index, Coordinate: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Find: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
