package gridgraph

import (
	"errors"
	"testing"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged and
// inconsistent inputs.
func TestNewGrid_Errors(t *testing.T) {
	open := [][]bool{{false, false}, {false, true}}
	cases := []struct {
		name       string
		walls      [][]bool
		start, end Position
		err        error
	}{
		{"EmptyRows", [][]bool{}, Position{}, Position{}, ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, Position{}, Position{}, ErrEmptyGrid},
		{"NonRectangular", [][]bool{{false, false}, {false}}, Position{}, Position{}, ErrNonRectangular},
		{"StartOutOfBounds", open, Position{Row: -1, Col: 0}, Position{Row: 0, Col: 1}, ErrOutOfBounds},
		{"EndOutOfBounds", open, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 2}, ErrOutOfBounds},
		{"StartOnWall", open, Position{Row: 1, Col: 1}, Position{Row: 0, Col: 0}, ErrStartIsWall},
		{"EndOnWall", open, Position{Row: 0, Col: 0}, Position{Row: 1, Col: 1}, ErrEndIsWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.walls, tc.start, tc.end)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later edits to the input mask do not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	walls := [][]bool{{false, false, false}}
	g, err := NewGrid(walls, Position{0, 0}, Position{0, 2})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	walls[0][1] = true
	if g.IsWall(Position{0, 1}) {
		t.Error("grid observed mutation of its input mask")
	}
}

// TestInBounds checks InBounds and IsWall on a 2×3 grid, including
// negative coordinates that must not wrap.
func TestInBounds(t *testing.T) {
	g := fromRows(t,
		"S.#",
		"#.E",
	)
	valid := []Position{{0, 0}, {1, 2}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if !g.IsWall(p) {
			t.Errorf("IsWall(%v)=false; out-of-bounds must read as wall", p)
		}
	}
	if !g.IsWall(Position{0, 2}) || g.IsWall(Position{0, 1}) {
		t.Error("IsWall disagrees with the mask")
	}
}

// TestStep_NoWraparound steps off every edge of a borderless 1×1 grid.
func TestStep_NoWraparound(t *testing.T) {
	g, err := NewGrid([][]bool{{false}}, Position{0, 0}, Position{0, 0})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for _, d := range Conn4 {
		if q, ok := g.Step(Position{0, 0}, d); ok {
			t.Errorf("Step(%v) = %v, true; want out of bounds", d, q)
		}
	}
	if n := len(g.OpenNeighbors(Position{0, 0})); n != 0 {
		t.Errorf("OpenNeighbors = %d cells; want 0", n)
	}
}

// TestOpenNeighbors lists floor neighbours in East, South, West, North order.
func TestOpenNeighbors(t *testing.T) {
	g := fromRows(t,
		"#.#",
		".S.",
		"#E#",
	)
	got := g.OpenNeighbors(Position{1, 1})
	want := []Position{{1, 2}, {2, 1}, {1, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("OpenNeighbors = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OpenNeighbors[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestWithWall checks copy-on-write edits and the start/end guard.
func TestWithWall(t *testing.T) {
	g := fromRows(t, "S..E")
	blocked, err := g.WithWall(Position{0, 1}, true)
	if err != nil {
		t.Fatalf("WithWall error: %v", err)
	}
	if !blocked.IsWall(Position{0, 1}) {
		t.Error("edited copy lacks the new wall")
	}
	if g.IsWall(Position{0, 1}) {
		t.Error("original grid was mutated")
	}
	if _, err := g.WithWall(g.Start(), true); !errors.Is(err, ErrStartIsWall) {
		t.Errorf("walling start: got %v; want ErrStartIsWall", err)
	}
	if _, err := g.WithWall(g.End(), true); !errors.Is(err, ErrEndIsWall) {
		t.Errorf("walling end: got %v; want ErrEndIsWall", err)
	}
	if _, err := g.WithWall(Position{5, 5}, false); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds edit: got %v; want ErrOutOfBounds", err)
	}
}

// TestStringAndFingerprint verifies the canonical rendering and that the
// fingerprint tracks content.
func TestStringAndFingerprint(t *testing.T) {
	rows := []string{
		"#####",
		"#S.E#",
		"#####",
	}
	g := fromRows(t, rows...)
	want := "#####\n#S.E#\n#####\n"
	if s := g.String(); s != want {
		t.Errorf("String() = %q; want %q", s, want)
	}
	if g.FloorCount() != 3 {
		t.Errorf("FloorCount = %d; want 3", g.FloorCount())
	}

	same := fromRows(t, rows...)
	if g.Fingerprint() != same.Fingerprint() {
		t.Error("identical grids have different fingerprints")
	}
	other, _ := g.WithWall(Position{1, 2}, true)
	if g.Fingerprint() == other.Fingerprint() {
		t.Error("different grids share a fingerprint")
	}
}

// TestCoordinateRoundTrip maps every index back and forth.
func TestCoordinateRoundTrip(t *testing.T) {
	g := fromRows(t,
		"S...",
		"....",
		"...E",
	)
	for i := 0; i < g.Rows()*g.Cols(); i++ {
		if got := g.index(g.Coordinate(i)); got != i {
			t.Errorf("index(Coordinate(%d)) = %d", i, got)
		}
	}
}
