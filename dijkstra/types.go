// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over oriented maze states.
//
// The search vertex is a statespace.State (cell, heading). Leaving a state
// costs a turn penalty plus a forward step (see statespace.CostModel), so
// the search has to tell apart "same cell, different heading".
//
// Complexity:
//
//	– Time:  O(S log S)   where S = 4 × |floor cells| (one state per heading)
//	   • Each state is finalized at most once.
//	   • Each finalized state relaxes at most four transitions.
//	   • Each heap operation (push/pop) costs O(log S).
//	– Space: O(S)
//	   • O(S) for the best-known table (and predecessors when requested).
//	   • O(S) in the frontier in the worst case (lazy decrease-key).
//
// The tile collector (OptimalTiles) additionally stores, per state, the set
// of cells on every optimal partial path into it, so its memory grows with
// S × path length in the worst case.
//
// Options:
//
//	– StartHeading: initial orientation (default East).
//	– Costs:        step and turn prices (default statespace.DefaultCostModel).
//	– MaxCost:      states whose tentative cost exceeds this are not pushed.
//	– ReturnPath:   record predecessors and return one optimal route.
//	– Ctx:          polled while popping; cancellation aborts the search.
//	– OnExpand:     hook invoked for every finalized state.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOptionViolation if an option carries an invalid value.
//
// An unreachable end cell is not an error: it is reported through
// Result.Reachable == false (and ok == false from ShortestCost).
//
// Example usage:
//
//	cost, ok, err := dijkstra.ShortestCost(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    fmt.Println("no path")
//	}
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/statespace"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid functional option, e.g. a
	// negative MaxCost, an unknown heading or a bad cost model.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// ctxCheckInterval is how many pops happen between context polls.
const ctxCheckInterval = 1024

// Options configures the behavior of the search.
type Options struct {
	Ctx          context.Context               // Cancellation; polled every ctxCheckInterval pops
	StartHeading statespace.Heading            // Orientation of the start state
	Costs        statespace.CostModel          // Step and turn prices
	MaxCost      int64                         // Tentative costs above this are not pushed
	ReturnPath   bool                          // Whether to record predecessors and return a route
	OnExpand     func(statespace.State, int64) // Called once per finalized state

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartHeading sets the orientation of the agent at the start cell.
func WithStartHeading(h statespace.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: start heading %v", ErrOptionViolation, h)
			return
		}
		o.StartHeading = h
	}
}

// WithCostModel replaces the step and turn prices. The model must pass
// statespace.CostModel.Validate.
func WithCostModel(m statespace.CostModel) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Costs = m
	}
}

// WithMaxCost caps the tentative cost of any pushed state.
// A negative cap is recorded as ErrOptionViolation.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxCost = limit
	}
}

// WithReturnPath enables predecessor tracking so Search returns a route.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnExpand registers a callback invoked for every finalized state,
// in pop order.
func WithOnExpand(fn func(s statespace.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:          context.Background()
//   - StartHeading: statespace.East
//   - Costs:        statespace.DefaultCostModel()
//   - MaxCost:      math.MaxInt64 (no cap)
//   - ReturnPath:   false
//   - OnExpand:     no-op
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		StartHeading: statespace.East,
		Costs:        statespace.DefaultCostModel(),
		MaxCost:      math.MaxInt64,
		ReturnPath:   false,
		OnExpand:     func(statespace.State, int64) {},
	}
}

// Result is the outcome of the minimum-cost search.
//
//   - Cost:      minimum total cost to reach the end cell (0 if unreachable).
//   - Reachable: false iff the frontier emptied without reaching the end.
//   - Path:      one optimal route, start state first (only with ReturnPath).
//   - Expanded:  number of states finalized.
type Result struct {
	Cost      int64              `json:"cost"`
	Reachable bool               `json:"reachable"`
	Path      []statespace.State `json:"path,omitempty"`
	Expanded  int                `json:"expanded"`
}

// Turns counts heading changes along Path.
func (r *Result) Turns() int {
	n := 0
	for i := 1; i < len(r.Path); i++ {
		if r.Path[i].Heading != r.Path[i-1].Heading {
			n++
		}
	}

	return n
}
