package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrStartIsWall indicates the start cell is a wall.
	ErrStartIsWall = errors.New("gridgraph: start cell is a wall")
	// ErrEndIsWall indicates the end cell is a wall.
	ErrEndIsWall = errors.New("gridgraph: end cell is a wall")
	// ErrNoPath indicates no breach path exists between start and end.
	ErrNoPath = errors.New("gridgraph: no path between start and end")
)
