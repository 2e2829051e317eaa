// Package gridgraph provides the obstacle map the maze search runs on.
//
//   - Four-connectivity only (Conn4), bounds-checked with signed arithmetic
//   - Floor connectivity via component labelling
//   - Minimum wall breaches between start and end
package gridgraph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular wall mask.
// walls[r][c] == true marks a wall. It deep-copies the input to ensure
// immutability.
//
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if start or
// end lie outside the grid, and ErrStartIsWall / ErrEndIsWall if either is
// a wall.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(walls [][]bool, start, end Position) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		rows:  h,
		cols:  w,
		walls: make([]bool, h*w),
		start: start,
		end:   end,
	}
	for r := 0; r < h; r++ {
		copy(g.walls[r*w:(r+1)*w], walls[r])
	}

	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, h, w)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, h, w)
	}
	if g.walls[g.index(start)] {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}
	if g.walls[g.index(end)] {
		return nil, fmt.Errorf("%w: %v", ErrEndIsWall, end)
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsWall reports whether p is a wall. Positions outside the grid count as
// walls, so callers can treat the boundary uniformly.
// Complexity: O(1).
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}

	return g.walls[g.index(p)]
}

// Step returns the cell one offset d = (dRow, dCol) away from p, and
// whether that cell is inside the grid. The arithmetic is signed, so a
// step north from row 0 yields ok == false rather than wrapping around.
func (g *Grid) Step(p Position, d [2]int) (Position, bool) {
	q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}

	return q, g.InBounds(q)
}

// OpenNeighbors returns the in-bounds floor cells orthogonally adjacent to
// p, in Conn4 order.
func (g *Grid) OpenNeighbors(p Position) []Position {
	out := make([]Position, 0, len(Conn4))
	for _, d := range Conn4 {
		q, ok := g.Step(p, d)
		if ok && !g.walls[g.index(q)] {
			out = append(out, q)
		}
	}

	return out
}

// FloorCount returns the number of non-wall cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, w := range g.walls {
		if !w {
			n++
		}
	}

	return n
}

// WithWall returns a copy of g with the cell at p set to wall (or floor).
// Start and end cannot be turned into walls.
func (g *Grid) WithWall(p Position, wall bool) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if wall && p == g.start {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, p)
	}
	if wall && p == g.end {
		return nil, fmt.Errorf("%w: %v", ErrEndIsWall, p)
	}
	cp := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		walls: make([]bool, len(g.walls)),
		start: g.start,
		end:   g.end,
	}
	copy(cp.walls, g.walls)
	cp.walls[g.index(p)] = wall

	return cp, nil
}

// String renders the grid with '#' walls, '.' floor, 'S' start and 'E' end,
// one line per row, each terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.end:
				sb.WriteByte('E')
			case g.walls[g.index(p)]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Fingerprint returns the hex SHA-256 of String(). Two grids share a
// fingerprint iff they have identical walls, start and end.
func (g *Grid) Fingerprint() string {
	sum := sha256.Sum256([]byte(g.String()))

	return hex.EncodeToString(sum[:])
}

// index maps p to a row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
