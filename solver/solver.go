// Package solver answers both maze queries for a grid in one call and
// wraps them in the service concerns the CLI and the HTTP server share:
// parallel execution, duplicate-request collapsing, a bounded result cache,
// metrics, tracing and structured logging.
//
// # Execution Model
//
//  1. Look the grid's fingerprint up in the LRU cache.
//  2. On a miss, collapse concurrent identical requests with singleflight.
//  3. Run the minimum-cost search, the tile collector and the step BFS in
//     parallel via errgroup. Each owns its own tables; the grid is shared
//     read-only.
//  4. Cross-check the three answers and assemble a Report.
//
// # Thread Safety
//
// Safe for concurrent use. Multiple goroutines may call Solve simultaneously.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/cache"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/statespace"
)

var (
	// ErrNilGrid is returned when Solve receives a nil grid.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrInconsistent is returned when the independent queries disagree.
	ErrInconsistent = errors.New("solver: queries disagree")

	// ErrGridTooLarge is returned for grids above the configured cell limit.
	ErrGridTooLarge = errors.New("solver: grid too large")
)

// Solver runs maze queries with a fixed cost model and start heading.
type Solver struct {
	costs    statespace.CostModel
	heading  statespace.Heading
	symbols  mazeio.Symbols
	maxCells int // 0 means unlimited
	logger   *slog.Logger

	flight singleflight.Group

	// mu guards cache; the LRU is not safe for concurrent use.
	mu    sync.Mutex
	cache *cache.Cache[string, *Report] // nil when caching is disabled
}

// New builds a Solver from cfg. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sym, err := cfg.Symbols.ToSymbols()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Solver{
		costs:    cfg.Costs,
		heading:  cfg.StartHeading,
		symbols:  sym,
		maxCells: cfg.MaxCells,
		logger:   logger,
	}
	if cfg.CacheSize > 0 {
		s.cache = cache.New[string, *Report](cfg.CacheSize)
	}

	return s, nil
}

// Parse reads a maze in the solver's alphabet.
func (s *Solver) Parse(r io.Reader) (*gridgraph.Grid, error) {
	return mazeio.Parse(r, mazeio.WithSymbols(s.symbols))
}

// Render draws g with the optimal-path cells of rep marked. With arrows,
// the cells of rep.Path show the heading the route leaves them in.
func (s *Solver) Render(g *gridgraph.Grid, rep *Report, arrows bool) (string, error) {
	opts := []mazeio.Option{mazeio.WithSymbols(s.symbols), mazeio.WithTiles(rep.TileCells)}
	if arrows {
		opts = append(opts, mazeio.WithPath(rep.Path))
	}

	return mazeio.RenderString(g, opts...)
}

// Solve answers both queries for g.
//
// An unreachable end is reported through Report.Reachable, never as an
// error. Errors are ErrNilGrid, ErrGridTooLarge, ErrInconsistent, or a
// wrapped context error.
// When concurrent callers share one computation, the first caller's
// context governs it.
func (s *Solver) Solve(ctx context.Context, g *gridgraph.Grid) (*Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if cells := g.Rows() * g.Cols(); s.maxCells > 0 && cells > s.maxCells {
		return nil, fmt.Errorf("%w: %d×%d is %d cells, limit %d",
			ErrGridTooLarge, g.Rows(), g.Cols(), cells, s.maxCells)
	}
	start := time.Now()
	key := g.Fingerprint()

	ctx, span := startSolveSpan(ctx, g.Rows(), g.Cols(), key)
	defer span.End()

	rep, err := s.solve(ctx, g, key)
	elapsed := time.Since(start)
	solveDuration.Observe(elapsed.Seconds())

	if err != nil {
		solvesTotal.WithLabelValues(resultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		s.logger.Error("solve failed",
			slog.String("fingerprint", key),
			slog.String("error", err.Error()),
			slog.Duration("duration", elapsed),
		)

		return nil, err
	}

	rep.RunID = uuid.NewString()
	rep.Elapsed = elapsed
	if rep.Reachable {
		solvesTotal.WithLabelValues(resultReachable).Inc()
	} else {
		solvesTotal.WithLabelValues(resultUnreachable).Inc()
	}
	setSolveSpanResult(span, rep)
	span.SetStatus(codes.Ok, "")
	s.logger.Info("solve",
		slog.String("run_id", rep.RunID),
		slog.Bool("reachable", rep.Reachable),
		slog.Int64("cost", rep.Cost),
		slog.Int("tiles", rep.Tiles),
		slog.Bool("cached", rep.Cached),
		slog.Duration("duration", elapsed),
	)

	return rep, nil
}

// solve returns a private copy of the report for key, from the cache or a
// (possibly shared) computation.
func (s *Solver) solve(ctx context.Context, g *gridgraph.Grid, key string) (*Report, error) {
	if rep, ok := s.lookup(key); ok {
		cacheHits.Inc()
		out := rep.clone()
		out.Cached = true

		return out, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		rep, err := s.compute(ctx, g)
		if err != nil {
			return nil, err
		}
		s.store(key, rep)

		return rep, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Report).clone(), nil
}

func (s *Solver) lookup(key string) (*Report, bool) {
	if s.cache == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(key)
}

func (s *Solver) store(key string, rep *Report) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Put(key, rep)
}

// compute runs the three queries in parallel and assembles the report.
// When start and end lie in different floor components the queries are
// skipped and only the breach is computed.
func (s *Solver) compute(ctx context.Context, g *gridgraph.Grid) (*Report, error) {
	if !g.Connected(g.Start(), g.End()) {
		return s.disconnected(g), nil
	}

	var (
		search *dijkstra.Result
		tiles  *dijkstra.TileResult
		walk   *bfs.Result
	)

	eg, egCtx := errgroup.WithContext(ctx)
	opts := []dijkstra.Option{
		dijkstra.WithContext(egCtx),
		dijkstra.WithStartHeading(s.heading),
		dijkstra.WithCostModel(s.costs),
	}
	searchOpts := append(opts[:len(opts):len(opts)], dijkstra.WithReturnPath())
	eg.Go(func() error {
		var err error
		search, err = dijkstra.Search(g, searchOpts...)
		return err
	})
	eg.Go(func() error {
		var err error
		tiles, err = dijkstra.OptimalTiles(g, opts...)
		return err
	})
	eg.Go(func() error {
		var err error
		walk, err = bfs.BFS(g, g.Start(), bfs.WithContext(egCtx), bfs.WithTarget(g.End()))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	statesExpanded.WithLabelValues("search").Observe(float64(search.Expanded))
	statesExpanded.WithLabelValues("tiles").Observe(float64(tiles.Expanded))

	if err := s.crossCheck(search, tiles, walk, g.End()); err != nil {
		return nil, err
	}

	return &Report{
		Reachable: search.Reachable,
		Cost:      search.Cost,
		Tiles:     tiles.Count(),
		TileCells: tiles.Tiles,
		MinSteps:  walk.Steps(g.End()),
		Turns:     search.Turns(),
		Path:      search.Path,
		Expanded:  search.Expanded,
	}, nil
}

// disconnected reports an end cut off from the start.
func (s *Solver) disconnected(g *gridgraph.Grid) *Report {
	rep := &Report{}
	if cells, walls, err := g.Breach(); err == nil {
		rep.Breach = &Breach{Walls: walls, Cells: cells}
	}

	return rep
}

// crossCheck verifies the invariants linking the three answers: both
// weighted queries agree on reachability and cost, and no route can take
// fewer steps than the BFS depth.
func (s *Solver) crossCheck(search *dijkstra.Result, tiles *dijkstra.TileResult, walk *bfs.Result, end gridgraph.Position) error {
	if search.Reachable != tiles.Reachable || search.Cost != tiles.Cost {
		return fmt.Errorf("%w: search (reachable=%v, cost=%d) vs tiles (reachable=%v, cost=%d)",
			ErrInconsistent, search.Reachable, search.Cost, tiles.Reachable, tiles.Cost)
	}
	if walk.Reached(end) != search.Reachable {
		return fmt.Errorf("%w: bfs reachable=%v, search reachable=%v",
			ErrInconsistent, walk.Reached(end), search.Reachable)
	}
	if steps := walk.Steps(end); search.Reachable && search.Cost < int64(steps)*s.costs.Step {
		return fmt.Errorf("%w: cost %d below %d steps", ErrInconsistent, search.Cost, steps)
	}

	return nil
}
