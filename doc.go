// Package mazepath finds minimum-cost routes through oriented-grid mazes,
// where every move forward costs a step and every change of heading costs
// a turn.
//
// What is in the box?
//
//	A small stack of packages, each usable on its own:
//		• gridgraph/: rectangular wall/floor grid, 4-neighbour moves, components, wall breach
//		• statespace/: (position, heading) states, the turn/step cost model, successors
//		• frontier/: FIFO-stable min-priority queue of states
//		• dijkstra/: ShortestCost / Search and CountOptimalTiles / OptimalTiles
//		• bfs/: unweighted step-count traversal used as a lower bound
//		• mazeio/: text maze parsing and rendering
//		• config/: YAML + environment configuration and slog setup
//		• solver/: both queries in parallel, cached, traced and measured
//		• server/: HTTP front end (gin)
//		• cmd/mazepath: the CLI
//
// Quick example:
//
//	#####
//	###E#
//	###.#
//	#S..#
//	#####
//
// Facing east, the cheapest route walks two cells, turns north once and
// walks two more: 4 steps + 1 turn = 1004. All five open cells lie on
// that route, so CountOptimalTiles returns 5.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
//	mazepath solve maze.txt
package mazepath
