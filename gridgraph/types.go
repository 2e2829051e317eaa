// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/mazepath.
package gridgraph

import "fmt"

// Position addresses a single cell by row and column.
// Both coordinates are non-negative for any Position handed out by a Grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major. Used to produce deterministic tile lists.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Grid is an immutable rectangular obstacle map with two distinguished
// floor cells, Start and End.
//
// walls is stored row-major: walls[row*cols+col]. Start and End are never
// walls and always lie inside the grid; NewGrid enforces both.
type Grid struct {
	rows, cols int
	walls      []bool
	start, end Position
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the end cell.
func (g *Grid) End() Position { return g.end }

// Conn4 lists the four orthogonal offsets as (dRow, dCol), in the
// clockwise order East, South, West, North.
var Conn4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
