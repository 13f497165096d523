// Package pipemaze traces the closed pipe loop running through a maze
// entrance and measures it.
//
// What:
//
//   - ParseMaze turns input lines into a grid of Pipe values and locates the
//     single entrance marker S.
//   - Connects decides whether two adjacent pipes join: both must open
//     toward each other; the entrance opens toward every direction.
//   - Trace walks the loop from the entrance, preferring Left, Bottom, Right,
//     Top, and records the ordered path plus a trace map holding only loop
//     cells.
//   - ResolveShape infers the pipe hidden under the entrance from the two
//     neighbors opening toward it.
//   - InteriorCount converts the loop polygon into the number of enclosed
//     cells with the shoelace sum and Pick's theorem; Loop.ScanInterior
//     reaches the same number by scanline parity over the trace map.
//
// Symbols:
//
//	.  Ground             |  Vertical          -  Horizontal
//	L  ElbowTopRight      J  ElbowTopLeft      7  ElbowBottomLeft
//	F  ElbowBottomRight   S  Entrance
//
// Complexity (W×H = maze size, L = loop length):
//
//   - ParseMaze: O(W×H).
//   - Trace:     O(L) time, O(L) memory for path and trace map.
//   - InteriorCount: O(L). ScanInterior: O(W×H).
//
// Errors:
//
//   - ErrUnknownSymbol: input character outside the alphabet above.
//   - ErrMissingEntrance, ErrMultipleEntrances: not exactly one S.
//   - ErrBrokenLoop: the walk dead-ends before returning to S.
//   - ErrAmbiguousEntranceShape: other than two neighbors open toward S.
//   - ErrNilMaze: Trace called with a nil maze.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular from the loader.
package pipemaze
