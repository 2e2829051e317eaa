// Package dijkstra finds minimum-cost routes through a maze whose moves are
// priced by orientation: every step forward costs Costs.Step and every
// quarter turn a heading requires is priced from the Costs.Turns table.
//
// Overview:
//
//   - The search vertex is a (cell, heading) state. Moving from one cell to a
//     neighbour first rotates the agent to face that neighbour, then steps.
//   - Search / ShortestCost answer "what is the cheapest total cost from S to E?".
//   - OptimalTiles / CountOptimalTiles answer "which cells lie on at least one
//     of the cheapest routes?".
//
// When to use:
//
//   - Any grid where direction changes are expensive relative to movement
//     (vehicles, reindeer, robotic arms, cable routing on a board).
//   - When several optimal routes must be compared or unioned, e.g. to
//     choose a seating spot on any of them.
//
// Key features:
//
//   - Functional options: start heading, cost model, cost cap, path return,
//     cancellation context and an expansion hook.
//   - Deterministic: equal-cost states pop in insertion order, so two runs
//     over the same grid expand states in the same sequence.
//   - No wall border is required; every neighbour lookup is bounds-checked.
//
// Performance and complexity:
//
//   - Search:       O(S log S) time, O(S) space, S = 4 × floor cells.
//   - OptimalTiles: O(S log S · L) time and O(S · L) space in the worst case,
//     L = number of cells in a state's optimal-path set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if a nil *gridgraph.Grid is passed in.
//   - ErrOptionViolation:
//     Returned if an option carried an invalid value (unknown heading,
//     negative MaxCost, cost model failing statespace.CostModel.Validate).
//   - Context errors:
//     Wrapped and returned when the supplied context is cancelled mid-search.
//
// An unreachable end cell is never an error. Search reports it through
// Result.Reachable, ShortestCost through its ok flag, and
// CountOptimalTiles returns 0.
//
// Thread safety:
//
//   - A Grid is immutable after construction, so any number of searches may
//     run over the same grid concurrently. Each call owns its own tables.
//
// See also:
//
//   - statespace: headings, the cost model and the successor function.
//   - frontier:   the cost-ordered queue driving both searches.
//   - mazeio:     parsing the character-grid format into a gridgraph.Grid.
package dijkstra
