package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazeio"
)

// Mazes shared by the tests in this package.
const (
	// smallMaze: cost 7036, 45 cells on optimal paths.
	smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

	// largerMaze: cost 11048, 64 cells on optimal paths.
	largerMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

	// corridor: straight run of 4 steps, no turns.
	corridor = `#######
#S...E#
#######
`

	// oneTurn: 2 steps east, one quarter turn north, 2 steps.
	oneTurn = `#####
###E#
###.#
#S..#
#####
`

	// reversal: the end lies behind the east-facing start.
	reversal = `#######
#E...S#
#######
`

	// twinRoutes: a pillar splits the corridor into an upper and a lower
	// route of equal cost (3006); 13 cells lie on some optimal path.
	twinRoutes = `#######
#.....#
#S.#.E#
#.....#
#######
`

	// sealed: the end cell is walled in.
	sealed = `#######
#S..###
#...#E#
#...###
#######
`

	// borderless: no wall frame; the search must bounds-check itself.
	borderless = `S..
.#.
..E
`
)

// mustGrid parses a maze with the default symbols or fails the test.
func mustGrid(t testing.TB, text string) *gridgraph.Grid {
	t.Helper()
	g, err := mazeio.ParseString(text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	return g
}
