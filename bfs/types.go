package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrStartIsWall is returned when the start cell is a wall.
	ErrStartIsWall = errors.New("bfs: start cell is a wall")

	// ErrOptionViolation is returned when an Option cannot apply to the grid.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// unreached marks a cell the flood never got to.
const unreached = -1

// Option configures a flood via functional arguments.
type Option func(*Options)

// Options holds the parameters of one flood.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, when set, ends the flood as soon as its step count is known.
	// Cells farther out than the target stay unreached.
	Target    gridgraph.Position
	HasTarget bool
}

// DefaultOptions floods the whole component under context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the flood once p has been reached. A target outside
// the grid is reported as ErrOptionViolation.
func WithTarget(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Target = p
		o.HasTarget = true
	}
}

// Result holds per-cell step counts from the start of a flood.
//
//   - Order: cells in the order they were dequeued.
//   - Steps: fewest forward moves from the start, or -1.
//   - PathTo: one step-shortest route, via the recorded parents.
type Result struct {
	Order []gridgraph.Position

	cols   int
	steps  []int // row-major; unreached or a step count
	parent []int // row-major index of the predecessor; -1 at the start
}

func (r *Result) index(p gridgraph.Position) (int, bool) {
	i := p.Row*r.cols + p.Col
	if p.Row < 0 || p.Col < 0 || p.Col >= r.cols || i >= len(r.steps) {
		return 0, false
	}

	return i, true
}

// Steps returns the fewest moves from the start to p, or -1 when p was
// not reached (a wall, another component, out of bounds, or beyond the
// target).
func (r *Result) Steps(p gridgraph.Position) int {
	i, ok := r.index(p)
	if !ok {
		return unreached
	}

	return r.steps[i]
}

// Reached reports whether p was discovered.
func (r *Result) Reached(p gridgraph.Position) bool { return r.Steps(p) != unreached }

// PathTo returns one step-shortest route from the start to dest, both
// included.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	i, ok := r.index(dest)
	if !ok || r.steps[i] == unreached {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := make([]gridgraph.Position, r.steps[i]+1)
	for k := len(path) - 1; k >= 0; k-- {
		path[k] = gridgraph.Position{Row: i / r.cols, Col: i % r.cols}
		i = r.parent[i]
	}

	return path, nil
}
