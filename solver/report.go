package solver

import (
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/statespace"
)

// Report is everything one Solve call learns about a maze.
type Report struct {
	// RunID identifies this call; it differs between cache hits.
	RunID string `json:"run_id"`

	// Reachable is false when no route joins start and end.
	Reachable bool `json:"reachable"`

	// Cost is the minimum route cost (0 when unreachable).
	Cost int64 `json:"cost"`

	// Tiles counts the cells on at least one optimal route.
	Tiles int `json:"tiles"`

	// TileCells lists those cells in row-major order.
	TileCells []gridgraph.Position `json:"tile_cells,omitempty"`

	// MinSteps is the fewest moves from start to end ignoring turns.
	MinSteps int `json:"min_steps"`

	// Turns is the number of heading changes along Path.
	Turns int `json:"turns"`

	// Path is one optimal route, start state first.
	Path []statespace.State `json:"path,omitempty"`

	// Expanded is the number of states the minimum-cost search finalized.
	Expanded int `json:"expanded"`

	// Elapsed is the wall time of this call.
	Elapsed time.Duration `json:"elapsed_ns"`

	// Cached is true when the report came from the result cache.
	Cached bool `json:"cached"`

	// Breach explains an unreachable end: the fewest walls to remove.
	Breach *Breach `json:"breach,omitempty"`
}

// Breach is the cheapest way to connect start and end through walls.
type Breach struct {
	Walls int                  `json:"walls"`
	Cells []gridgraph.Position `json:"cells"`
}

// clone returns a shallow copy; slices are shared and never mutated.
func (r *Report) clone() *Report {
	cp := *r
	return &cp
}
