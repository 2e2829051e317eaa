// Package dijkstra implements Dijkstra's shortest-path search over the
// oriented state space of a maze.
//
// Notes on implementation choices:
//
//   - States are (cell, heading); the start state faces Options.StartHeading.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     frontier and ignoring stale entries whose cost exceeds the best known.
//   - The first popped state standing on the end cell is optimal, because
//     every transition is non-negative and the frontier yields the globally
//     smallest tentative cost.
//   - Neighbour arithmetic is delegated to gridgraph.Grid.Step, which is
//     signed and bounds-checked; no wall border is assumed.
package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/statespace"
)

// Search computes the minimum cost to move from g.Start() to g.End().
//
// Returns:
//
//   - res: cost, reachability, expansion count and, with WithReturnPath,
//     one optimal route from the start state to the first end state popped.
//   - err: ErrNilGrid, ErrOptionViolation, or the wrapped context error
//     if the search was cancelled.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × floor cells
//   - Space: O(S)
func Search(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		options: cfg,
		best:    make(map[statespace.State]int64, 4*g.FloorCount()),
		pq:      frontier.New[struct{}](),
		poll:    poller{ctx: cfg.Ctx},
	}
	if cfg.ReturnPath {
		r.prev = make(map[statespace.State]statespace.State)
	}

	r.init()

	return r.process()
}

// ShortestCost returns the minimum cost from start to end.
// ok is false when the end cell is unreachable; that is a normal result,
// not an error.
func ShortestCost(g *gridgraph.Grid, opts ...Option) (cost int64, ok bool, err error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Reachable, nil
}

// buildOptions applies opts over DefaultOptions and validates the input.
func buildOptions(g *gridgraph.Grid, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if g == nil {
		return cfg, ErrNilGrid
	}

	return cfg, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.Grid                       // The input grid; read-only within the search.
	options Options                               // Configuration options.
	best    map[statespace.State]int64            // Best-known cost per state.
	prev    map[statespace.State]statespace.State // Predecessor on the best route (ReturnPath only).
	pq      *frontier.Frontier[struct{}]          // Lazy min-heap of tentative costs.
	buf     []statespace.Transition               // Reused successor buffer.
	poll    poller                                // Context polling.
}

// init seeds the best-known table and the frontier with the start state at cost 0.
func (r *runner) init() {
	start := statespace.State{Pos: r.g.Start(), Heading: r.options.StartHeading}
	r.best[start] = 0
	r.pq.Push(start, 0, struct{}{})
}

// process is the core loop. It repeatedly pops the cheapest state, stops on
// the first state standing on the end cell, and otherwise relaxes its
// transitions.
func (r *runner) process() (*Result, error) {
	res := &Result{}
	end := r.g.End()
	for {
		e, ok := r.pq.Pop()
		if !ok {
			// Frontier exhausted: the end cell is unreachable.
			return res, nil
		}
		if err := r.poll.check(); err != nil {
			return nil, err
		}

		// Skip stale entries superseded by a cheaper push.
		if e.Cost > r.best[e.State] {
			continue
		}
		res.Expanded++
		r.options.OnExpand(e.State, e.Cost)

		if e.State.Pos == end {
			res.Cost = e.Cost
			res.Reachable = true
			if r.prev != nil {
				res.Path = r.pathTo(e.State)
			}

			return res, nil
		}

		r.relax(e.State, e.Cost)
	}
}

// relax pushes every successor of u whose tentative cost strictly improves
// on the best known.
func (r *runner) relax(u statespace.State, cost int64) {
	r.buf = statespace.Successors(r.g, u, r.options.Costs, r.buf[:0])
	for _, tr := range r.buf {
		// cost <= MaxCost always holds, so the subtraction cannot wrap.
		if tr.Cost > r.options.MaxCost-cost {
			continue
		}
		nc := cost + tr.Cost
		if old, seen := r.best[tr.To]; seen && nc >= old {
			continue
		}
		r.best[tr.To] = nc
		if r.prev != nil {
			r.prev[tr.To] = u
		}
		r.pq.Push(tr.To, nc, struct{}{})
	}
}

// poller checks a context every ctxCheckInterval pops (and on the first).
type poller struct {
	ctx    context.Context
	popped int
}

func (p *poller) check() error {
	p.popped++
	if p.popped != 1 && p.popped%ctxCheckInterval != 0 {
		return nil
	}
	if err := p.ctx.Err(); err != nil {
		return fmt.Errorf("dijkstra: search aborted after %d pops: %w", p.popped, err)
	}

	return nil
}

// pathTo walks predecessors back from s to the start state.
func (r *runner) pathTo(s statespace.State) []statespace.State {
	start := statespace.State{Pos: r.g.Start(), Heading: r.options.StartHeading}
	path := []statespace.State{s}
	for cur := s; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
