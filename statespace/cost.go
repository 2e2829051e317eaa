package statespace

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// CostModel prices a transition: Turns[k] for k clockwise quarter turns,
// plus Step for the forward move.
type CostModel struct {
	Step  int64              `yaml:"step" json:"step"`
	Turns [NumHeadings]int64 `yaml:"turns" json:"turns"`
}

// MaxUnitCost bounds every step and turn price. A route visits each of the
// 4·cells states at most once, so with prices this small its total stays
// far below math.MaxInt64 on any grid that fits in memory.
const MaxUnitCost int64 = 1 << 40

// DefaultCostModel returns the reindeer-maze pricing: a step costs 1, a
// quarter turn either way 1000, a reversal 2000.
func DefaultCostModel() CostModel {
	return CostModel{
		Step:  1,
		Turns: [NumHeadings]int64{0, 1000, 2000, 1000},
	}
}

// Validate rejects a step cost below 1, negative turn costs and any price
// above MaxUnitCost. A positive step keeps every transition strictly
// positive, which the tile collector relies on to finish each state's
// record before expanding it.
func (m CostModel) Validate() error {
	if m.Step < 1 || m.Step > MaxUnitCost {
		return fmt.Errorf("%w: step cost %d must be in [1, %d]", ErrBadCostModel, m.Step, MaxUnitCost)
	}
	for k, c := range m.Turns {
		if c < 0 || c > MaxUnitCost {
			return fmt.Errorf("%w: turn cost for %d quarter turns is %d, want [0, %d]",
				ErrBadCostModel, k, c, MaxUnitCost)
		}
	}

	return nil
}

// TurnCost returns the cost of rotating from one heading to another.
func (m CostModel) TurnCost(from, to Heading) int64 {
	return m.Turns[from.Rotations(to)]
}

// MoveCost returns the full cost of leaving a state facing from in
// direction to: turn plus step.
func (m CostModel) MoveCost(from, to Heading) int64 {
	return m.TurnCost(from, to) + m.Step
}

// Successors appends to buf every legal transition out of s and returns the
// extended slice. A transition toward direction d exists iff the adjacent
// cell in direction d is inside g and not a wall; the resulting state faces d.
//
// Passing buf[:0] from the previous call avoids an allocation per expansion.
func Successors(g *gridgraph.Grid, s State, m CostModel, buf []Transition) []Transition {
	for d := Heading(0); d < NumHeadings; d++ {
		next, ok := g.Step(s.Pos, d.Delta())
		if !ok || g.IsWall(next) {
			continue
		}
		buf = append(buf, Transition{
			To:   State{Pos: next, Heading: d},
			Cost: m.MoveCost(s.Heading, d),
		})
	}

	return buf
}
