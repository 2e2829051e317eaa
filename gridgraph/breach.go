package gridgraph

import (
	"container/list"
)

// Breach finds the fewest walls that must be turned into floor so that
// End becomes reachable from Start. Each converted wall costs 1; moving
// through floor is free.
// Returns the sequence of cells (start and end included) and the number of
// walls on it. A cost of 0 means the two are already connected.
//
// Behavior:
//  1. 0–1 BFS from Start over every in-bounds cell:
//     • Moving into a floor cell → cost 0
//     • Moving into a wall cell  → cost 1
//  2. Stop when End is popped.
//  3. Reconstruct path via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (g *Grid) Breach() (path []Position, cost int, err error) {
	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	src, dst := g.index(g.start), g.index(g.end)
	dist[src] = 0
	dq.PushFront(src)

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		up := g.Coordinate(u)
		for _, d := range Conn4 {
			vp, ok := g.Step(up, d)
			if !ok {
				continue
			}
			v := g.index(vp)
			step := 0
			if g.walls[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
