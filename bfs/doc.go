// Package bfs floods the open cells of a gridgraph.Grid breadth-first and
// reports, for every cell, the fewest forward moves from a start cell.
//
// Headings and turn prices are ignored, so Result.Steps(end) is a lower
// bound on the number of steps of any oriented route; the solver checks
// the weighted search against it.
//
// Determinism
//
//	Neighbours are enqueued in E, S, W, N order (gridgraph.Conn4), so the
//	visit sequence is fully reproducible.
//
// Early exit
//
//	WithTarget stops the flood as soon as the target is dequeued. Every
//	cell closer than the target already has its final step count.
//
// Storage
//
//	Step counts and parents live in row-major slices sized rows·cols, so a
//	lookup is an index computation rather than a map lookup.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell lies outside the grid.
//   - ErrStartIsWall       if the start cell is a wall.
//   - ErrOptionViolation   if the target lies outside the grid.
package bfs
