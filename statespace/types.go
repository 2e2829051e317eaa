// Package statespace defines the search vertex of the maze search, an
// oriented cell, together with the cost model that prices moving between
// such vertices.
//
// A State is (Position, Heading). From any state the agent may leave in
// each of the four cardinal directions d: it first rotates from its
// current heading to d, paying a turn cost that depends only on the number
// of clockwise quarter turns k between the two, then steps one cell
// forward, paying the step cost. Rotation and step are atomic: there is no
// state that turned without moving.
//
// Default costs:
//
//	k (clockwise quarter turns): 0     1     2     3
//	turn cost:                   0  1000  2000  1000
//	step cost:                   1
//
// k=3 is priced like a single counter-clockwise turn.
//
// Errors (sentinel):
//
//   - ErrBadCostModel   if a cost is negative or the step cost is below 1.
//   - ErrUnknownHeading if a heading name cannot be parsed.
package statespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors returned by the statespace package.
var (
	// ErrBadCostModel indicates a cost model with negative costs or a
	// non-positive step cost.
	ErrBadCostModel = errors.New("statespace: invalid cost model")

	// ErrUnknownHeading indicates a heading name that is not one of
	// east, south, west, north.
	ErrUnknownHeading = errors.New("statespace: unknown heading")
)

// Heading is one of the four cardinal orientations, numbered in clockwise
// order so that RotateCW is (h+1) mod 4.
type Heading uint8

const (
	East Heading = iota
	South
	West
	North
)

// NumHeadings is the size of the heading cycle.
const NumHeadings = 4

var headingNames = [NumHeadings]string{"east", "south", "west", "north"}

// String returns the lower-case name of the heading.
func (h Heading) String() string {
	if int(h) < NumHeadings {
		return headingNames[h]
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h < NumHeadings }

// RotateCW returns the heading one clockwise quarter turn from h.
func (h Heading) RotateCW() Heading { return (h + 1) % NumHeadings }

// Rotations returns the number of clockwise quarter turns, in [0,3],
// needed to go from h to to.
func (h Heading) Rotations(to Heading) int {
	to %= NumHeadings
	k := 0
	for cur := h % NumHeadings; cur != to; cur = cur.RotateCW() {
		k++
	}

	return k
}

// Delta returns the (dRow, dCol) offset of one step in direction h.
func (h Heading) Delta() [2]int { return gridgraph.Conn4[h] }

// Glyph returns the arrow used when drawing a route: > v < ^.
func (h Heading) Glyph() byte { return ">v<^"[h] }

// ParseHeading converts a case-insensitive name ("east", "e", ...) into a
// Heading.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	case "north", "n":
		return North, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}

// MarshalText implements encoding.TextMarshaler.
func (h Heading) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heading) UnmarshalText(b []byte) error {
	v, err := ParseHeading(string(b))
	if err != nil {
		return err
	}
	*h = v

	return nil
}

// State is the unit of search: a cell and the direction the agent faces.
// Two states are equal iff both fields match; State is comparable and is
// used directly as a map key.
type State struct {
	Pos     gridgraph.Position `json:"pos"`
	Heading Heading            `json:"heading"`
}

// String formats the state as "(row,col)/heading".
func (s State) String() string {
	return s.Pos.String() + "/" + s.Heading.String()
}

// Transition is one legal move out of a state and what it costs.
type Transition struct {
	To   State
	Cost int64
}
