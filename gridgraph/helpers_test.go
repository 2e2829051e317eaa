package gridgraph

import "testing"

// fromRows builds a Grid from '#', '.', 'S', 'E' rows.
// It fails the test on any construction error.
func fromRows(t testing.TB, rows ...string) *Grid {
	t.Helper()
	walls := make([][]bool, len(rows))
	var start, end Position
	for r, line := range rows {
		walls[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				walls[r][c] = true
			case 'S':
				start = Position{Row: r, Col: c}
			case 'E':
				end = Position{Row: r, Col: c}
			}
		}
	}
	g, err := NewGrid(walls, start, end)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	return g
}
