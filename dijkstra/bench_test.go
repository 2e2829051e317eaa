package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/dijkstra"
)

// BenchmarkShortestCost_SmallMaze measures the minimum-cost search on the
// 15×15 reference maze.
func BenchmarkShortestCost_SmallMaze(b *testing.B) {
	g := mustGrid(b, smallMaze)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestCost(g)
	}
}

// BenchmarkCountOptimalTiles_SmallMaze measures the tile collector on the
// same maze.
func BenchmarkCountOptimalTiles_SmallMaze(b *testing.B) {
	g := mustGrid(b, smallMaze)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.CountOptimalTiles(g)
	}
}

// BenchmarkShortestCost_Random141 runs the search on a 141×141 grid, the
// size of a full puzzle input, with ~20% walls.
// Complexity: O(S log S), S = 4 × floor cells.
func BenchmarkShortestCost_Random141(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(1)), 141, 141, 0.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestCost(g)
	}
}

// BenchmarkOptimalTiles_Random141 runs the collector on the same grid.
func BenchmarkOptimalTiles_Random141(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(1)), 141, 141, 0.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.OptimalTiles(g)
	}
}
