// Package gridgraph treats a rectangular maze as a 4-connected grid of
// wall and floor cells with a distinguished start and end.
//
// What:
//
//   - Grid wraps an immutable row-major wall mask plus Start and End.
//   - Step and OpenNeighbors do bounds-checked, signed neighbour arithmetic.
//   - Components / Connected label contiguous floor regions.
//   - Breach computes the fewest walls to remove to join Start and End (0-1 BFS).
//
// Why:
//
//   - The oriented search in package dijkstra needs a read-only obstacle map
//     that never assumes a wall border.
//   - Unreachable mazes are explained by the breach count.
//
// Complexity:
//
//   - NewGrid:    O(W×H), Memory: O(W×H).
//   - Components: O(W×H×4), Memory: O(W×H).
//   - Breach:     O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: start, end or an edited cell lies outside the grid.
//   - ErrStartIsWall / ErrEndIsWall: a distinguished cell is a wall.
//   - ErrNoPath: no breach path exists (cannot happen for valid grids).
package gridgraph
