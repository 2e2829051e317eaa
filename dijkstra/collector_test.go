package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/statespace"
)

// CollectorSuite exercises OptimalTiles / CountOptimalTiles.
type CollectorSuite struct {
	suite.Suite
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorSuite))
}

func (s *CollectorSuite) grid(text string) *gridgraph.Grid {
	return mustGrid(s.T(), text)
}

func (s *CollectorSuite) TestKnownCounts() {
	tests := []struct {
		name      string
		maze      string
		wantCost  int64
		wantTiles int
	}{
		{"small maze", smallMaze, 7036, 45},
		{"larger maze", largerMaze, 11048, 64},
		{"corridor", corridor, 4, 5},
		{"one turn", oneTurn, 1004, 5},
		{"reversal", reversal, 2004, 5},
		{"twin routes", twinRoutes, 3006, 13},
		{"borderless", borderless, 1004, 5},
		{"adjacent", "SE\n", 1, 2},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			res, err := dijkstra.OptimalTiles(s.grid(tc.maze))
			s.Require().NoError(err)
			s.True(res.Reachable)
			s.Equal(tc.wantCost, res.Cost)
			s.Equal(tc.wantTiles, res.Count())

			n, err := dijkstra.CountOptimalTiles(s.grid(tc.maze))
			s.Require().NoError(err)
			s.Equal(tc.wantTiles, n)
		})
	}
}

func (s *CollectorSuite) TestTwinRoutesUnion() {
	g := s.grid(twinRoutes)
	res, err := dijkstra.OptimalTiles(g)
	s.Require().NoError(err)

	// Each route alone covers 7 cells; the union exceeds both.
	single, err := dijkstra.Search(g, dijkstra.WithReturnPath())
	s.Require().NoError(err)
	s.Len(single.Path, 7)
	s.Greater(res.Count(), len(single.Path))

	for _, p := range []gridgraph.Position{
		{Row: 1, Col: 3}, // above the pillar
		{Row: 3, Col: 3}, // below the pillar
		{Row: 2, Col: 2}, // the shared fork
	} {
		s.Contains(res.Tiles, p)
	}
	s.NotContains(res.Tiles, gridgraph.Position{Row: 2, Col: 4})
}

func (s *CollectorSuite) TestTilesSortedAndDistinct() {
	res, err := dijkstra.OptimalTiles(s.grid(largerMaze))
	s.Require().NoError(err)
	for i := 1; i < len(res.Tiles); i++ {
		s.True(res.Tiles[i-1].Less(res.Tiles[i]), "tiles not strictly row-major at %d", i)
	}
}

func (s *CollectorSuite) TestEndStatesTiedAtMinimum() {
	res, err := dijkstra.OptimalTiles(s.grid(smallMaze))
	s.Require().NoError(err)
	s.NotEmpty(res.EndStates)
	for _, st := range res.EndStates {
		s.Equal(gridgraph.Position{Row: 1, Col: 13}, st.Pos)
	}
}

func (s *CollectorSuite) TestUnreachable() {
	g := s.grid(sealed)
	res, err := dijkstra.OptimalTiles(g)
	s.Require().NoError(err)
	s.False(res.Reachable)
	s.Zero(res.Cost)
	s.Empty(res.Tiles)

	n, err := dijkstra.CountOptimalTiles(g)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *CollectorSuite) TestAgreesWithSearchOnHeadings() {
	g := s.grid(smallMaze)
	for h := statespace.Heading(0); h < statespace.NumHeadings; h++ {
		cost, ok, err := dijkstra.ShortestCost(g, dijkstra.WithStartHeading(h))
		s.Require().NoError(err)
		s.Require().True(ok)

		res, err := dijkstra.OptimalTiles(g, dijkstra.WithStartHeading(h))
		s.Require().NoError(err)
		s.Equal(cost, res.Cost, "heading %v", h)
	}
}

func (s *CollectorSuite) TestMaxCostBelowOptimum() {
	res, err := dijkstra.OptimalTiles(s.grid(smallMaze), dijkstra.WithMaxCost(7035))
	s.Require().NoError(err)
	s.False(res.Reachable)
	s.Zero(res.Count())
}

func (s *CollectorSuite) TestInvalidInput() {
	_, err := dijkstra.OptimalTiles(nil)
	s.ErrorIs(err, dijkstra.ErrNilGrid)

	_, err = dijkstra.CountOptimalTiles(s.grid(corridor), dijkstra.WithStartHeading(statespace.Heading(9)))
	s.ErrorIs(err, dijkstra.ErrOptionViolation)
}

func (s *CollectorSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.CountOptimalTiles(s.grid(largerMaze), dijkstra.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// TestOptimalTiles_ConcurrentCalls runs both queries on one grid at once;
// the grid is shared read-only and every call owns its tables.
func TestOptimalTiles_ConcurrentCalls(t *testing.T) {
	g := mustGrid(t, smallMaze)
	const workers = 8
	counts := make(chan int, workers)
	costs := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		go func() {
			n, err := dijkstra.CountOptimalTiles(g)
			assert.NoError(t, err)
			counts <- n
		}()
		go func() {
			c, _, err := dijkstra.ShortestCost(g)
			assert.NoError(t, err)
			costs <- c
		}()
	}
	for i := 0; i < workers; i++ {
		require.Equal(t, 45, <-counts)
		require.Equal(t, int64(7036), <-costs)
	}
}
