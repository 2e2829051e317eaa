package dijkstra

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/statespace"
)

// tileSet is the set of cells visited along one or more partial paths.
type tileSet = mapset.Set[gridgraph.Position]

// TileResult is the outcome of the all-optimal-paths search.
//
//   - Cost:      minimum total cost to reach the end cell (0 if unreachable).
//   - Reachable: false iff no state on the end cell was ever popped.
//   - Tiles:     every cell on at least one optimal path, sorted row-major.
//   - EndStates: the end-cell states tied at Cost (one per arrival heading).
//   - Expanded:  number of (state, cost) records expanded.
type TileResult struct {
	Cost      int64                `json:"cost"`
	Reachable bool                 `json:"reachable"`
	Tiles     []gridgraph.Position `json:"tiles,omitempty"`
	EndStates []statespace.State   `json:"end_states,omitempty"`
	Expanded  int                  `json:"expanded"`
}

// Count returns the number of distinct cells on any optimal path.
func (r *TileResult) Count() int { return len(r.Tiles) }

// OptimalTiles runs the search to completion over every cost tied with the
// minimum and collects the cells lying on any optimal path.
//
// Relaxation differs from Search:
//
//   - tentative <  best: replace the state's record (cost and cell set), push.
//   - tentative == best: merge the new path's cells into a fresh union,
//     store it, and push again so the merged set reaches the successors.
//   - tentative >  best: discard.
//
// The loop ends once the smallest queued cost exceeds the best cost seen on
// the end cell. Each popped entry expands its state's record rather than
// its own payload; because every transition costs at least one step, all
// merges into a record happen before its first entry pops, so a record is
// expanded once and later duplicates are skipped.
//
// Complexity:
//
//   - Time:  O(S log S · L), L = cells per path set copied on push
//   - Space: O(S · L)
func OptimalTiles(g *gridgraph.Grid, opts ...Option) (*TileResult, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	c := &collector{
		g:       g,
		options: cfg,
		best:    make(map[statespace.State]*tileRecord, 4*g.FloorCount()),
		pq:      frontier.New[tileSet](),
		poll:    poller{ctx: cfg.Ctx},
	}
	c.init()

	return c.process()
}

// CountOptimalTiles returns the number of distinct cells on any optimal
// path, or 0 if the end cell is unreachable.
func CountOptimalTiles(g *gridgraph.Grid, opts ...Option) (int, error) {
	res, err := OptimalTiles(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

// tileRecord is the best-known entry for one state: its minimum cost and
// the union of cells over all paths reaching it at that cost.
type tileRecord struct {
	cost     int64
	tiles    tileSet
	expanded bool
}

// collector holds the mutable state for a single OptimalTiles execution.
type collector struct {
	g       *gridgraph.Grid
	options Options
	best    map[statespace.State]*tileRecord
	pq      *frontier.Frontier[tileSet]
	buf     []statespace.Transition
	poll    poller
}

// init seeds the table with the start state at cost 0, having visited only
// the start cell.
func (c *collector) init() {
	start := statespace.State{Pos: c.g.Start(), Heading: c.options.StartHeading}
	tiles := extend(mapset.New[gridgraph.Position](), start.Pos)
	c.best[start] = &tileRecord{cost: 0, tiles: tiles}
	c.pq.Push(start, 0, tiles)
}

func (c *collector) process() (*TileResult, error) {
	res := &TileResult{}
	end := c.g.End()
	for {
		// Every remaining entry is costlier than the optimum: done.
		if next, ok := c.pq.PeekCost(); !ok || (res.Reachable && next > res.Cost) {
			break
		}
		e, _ := c.pq.Pop()
		if err := c.poll.check(); err != nil {
			return nil, err
		}

		rec := c.best[e.State]
		if e.Cost > rec.cost || rec.expanded {
			continue
		}
		rec.expanded = true
		res.Expanded++
		c.options.OnExpand(e.State, e.Cost)

		if e.State.Pos == end {
			// Any route continuing past the end cell and returning costs more.
			res.Reachable = true
			res.Cost = e.Cost
			res.EndStates = append(res.EndStates, e.State)
			continue
		}

		c.relax(e.State, rec)
	}

	if res.Reachable {
		res.Tiles = c.union(res.EndStates)
	}

	return res, nil
}

// relax applies replace / merge / discard to every successor of u.
func (c *collector) relax(u statespace.State, from *tileRecord) {
	c.buf = statespace.Successors(c.g, u, c.options.Costs, c.buf[:0])
	for _, tr := range c.buf {
		if tr.Cost > c.options.MaxCost-from.cost {
			continue
		}
		nc := from.cost + tr.Cost

		// Sets are built only once the candidate survives the comparison.
		var tiles tileSet
		old, seen := c.best[tr.To]
		switch {
		case !seen || nc < old.cost:
			tiles = extend(from.tiles, tr.To.Pos)
			c.best[tr.To] = &tileRecord{cost: nc, tiles: tiles}
		case nc == old.cost:
			tiles = extend(old.tiles, tr.To.Pos)
			from.tiles.Each(tiles.Put)
			c.best[tr.To] = &tileRecord{cost: nc, tiles: tiles, expanded: old.expanded}
		default:
			continue
		}
		c.pq.Push(tr.To, nc, tiles)
	}
}

// union merges the tile sets of the given states into a sorted slice.
func (c *collector) union(states []statespace.State) []gridgraph.Position {
	all := mapset.New[gridgraph.Position]()
	for _, s := range states {
		c.best[s].tiles.Each(all.Put)
	}
	out := make([]gridgraph.Position, 0, all.Size())
	all.Each(func(p gridgraph.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// extend returns a fresh set holding src plus extra cells.
func extend(src tileSet, extra ...gridgraph.Position) tileSet {
	out := mapset.New[gridgraph.Position]()
	src.Each(out.Put)
	for _, p := range extra {
		out.Put(p)
	}

	return out
}
