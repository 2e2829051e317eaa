package gridgraph

// Components labels every contiguous region of floor cells under Conn4.
// It returns one label per cell (row-major); walls get -1, floor cells get
// the index of their component, in discovery order. The second result is
// the number of components.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) Components() ([]int, int) {
	total := g.rows * g.cols
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	n := 0
	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if g.walls[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS to label component n
		queue = append(queue[:0], i0)
		labels[i0] = n
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Conn4 {
				v, ok := g.Step(u, d)
				if !ok {
					continue
				}
				vi := g.index(v)
				if g.walls[vi] || labels[vi] >= 0 {
					continue
				}
				labels[vi] = n
				queue = append(queue, vi)
			}
		}
		n++
	}

	return labels, n
}

// Connected reports whether a and b are floor cells in the same component.
// Out-of-bounds or wall positions are never connected.
func (g *Grid) Connected(a, b Position) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	labels, _ := g.Components()

	return labels[g.index(a)] == labels[g.index(b)]
}
