package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// ctxCheckInterval is how many dequeues pass between context polls.
const ctxCheckInterval = 1024

// BFS floods the open cells of g outward from start, one step per layer.
// Neighbours are enqueued in E, S, W, N order, so Order is reproducible.
//
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartIsWall for invalid
// input, ErrOptionViolation for a target outside the grid, or the wrapped
// context error if the flood was cancelled.
//
// Complexity: O(rows·cols) time and memory.
func BFS(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.HasTarget && !g.InBounds(o.Target) {
		return nil, fmt.Errorf("%w: target %v outside %d×%d grid", ErrOptionViolation, o.Target, g.Rows(), g.Cols())
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if g.IsWall(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}

	f := newFlood(g, o)
	f.mark(start, unreached)
	if err := f.run(o.Ctx); err != nil {
		return nil, err
	}

	return f.res, nil
}

// flood is the mutable state of one BFS call. The queue holds row-major
// indices; res.steps doubles as the visited set.
type flood struct {
	g     *gridgraph.Grid
	opts  Options
	queue []int
	res   *Result
}

func newFlood(g *gridgraph.Grid, o Options) *flood {
	n := g.Rows() * g.Cols()
	res := &Result{
		Order:  make([]gridgraph.Position, 0, g.FloorCount()),
		cols:   g.Cols(),
		steps:  make([]int, n),
		parent: make([]int, n),
	}
	for i := range res.steps {
		res.steps[i] = unreached
		res.parent[i] = unreached
	}

	return &flood{g: g, opts: o, queue: make([]int, 0, g.FloorCount()), res: res}
}

// mark records p one step beyond its parent (or at 0 for the start) and
// queues it.
func (f *flood) mark(p gridgraph.Position, parent int) {
	i := p.Row*f.res.cols + p.Col
	f.res.steps[i] = 0
	if parent != unreached {
		f.res.steps[i] = f.res.steps[parent] + 1
	}
	f.res.parent[i] = parent
	f.queue = append(f.queue, i)
}

func (f *flood) run(ctx context.Context) error {
	for head := 0; head < len(f.queue); head++ {
		if head%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("bfs: flood aborted after %d cells: %w", head, err)
			}
		}
		i := f.queue[head]
		p := gridgraph.Position{Row: i / f.res.cols, Col: i % f.res.cols}
		f.res.Order = append(f.res.Order, p)
		if f.opts.HasTarget && p == f.opts.Target {
			return nil
		}
		for _, nbr := range f.g.OpenNeighbors(p) {
			if f.res.steps[nbr.Row*f.res.cols+nbr.Col] == unreached {
				f.mark(nbr, i)
			}
		}
	}

	return nil
}
