package solver

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	resultReachable   = "reachable"
	resultUnreachable = "unreachable"
	resultError       = "error"
)

// tracerName scopes the solver's spans. The tracer is fetched per call so a
// provider installed after package init still receives them.
const tracerName = "mazepath.solver"

var (
	// solvesTotal counts Solve calls by outcome.
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazepath_solves_total",
		Help: "Total maze solves by result",
	}, []string{"result"})

	// solveDuration tracks end-to-end Solve latency, cache hits included.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mazepath_solve_duration_seconds",
		Help:    "Maze solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// statesExpanded tracks how many states each query finalized.
	statesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazepath_states_expanded",
		Help:    "States expanded per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"query"})

	// cacheHits counts solves answered from the result cache.
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mazepath_cache_hits_total",
		Help: "Total solves served from the result cache",
	})
)

// startSolveSpan opens the span covering one Solve call.
func startSolveSpan(ctx context.Context, rows, cols int, fingerprint string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "Solver.Solve",
		trace.WithAttributes(
			attribute.Int("maze.rows", rows),
			attribute.Int("maze.cols", cols),
			attribute.String("maze.fingerprint", fingerprint),
		),
	)
}

// setSolveSpanResult records the outcome attributes on the solve span.
func setSolveSpanResult(span trace.Span, rep *Report) {
	span.SetAttributes(
		attribute.String("solve.run_id", rep.RunID),
		attribute.Bool("solve.reachable", rep.Reachable),
		attribute.Int64("solve.cost", rep.Cost),
		attribute.Int("solve.tiles", rep.Tiles),
		attribute.Bool("solve.cached", rep.Cached),
	)
}
