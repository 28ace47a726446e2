package core

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// searchesTotal counts searches by status label.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "watersort_searches_total",
		Help: "Total searches by outcome",
	}, []string{"status"})

	searchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_search_iterations",
		Help:    "States dequeued per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	searchVisited = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_search_visited_states",
		Help:    "Distinct states discovered per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_search_duration_seconds",
		Help:    "Search wall-clock duration",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	solutionLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_solution_moves",
		Help:    "Moves in found solutions",
		Buckets: prometheus.LinearBuckets(0, 4, 11),
	})
)

var (
	tracerOnce   sync.Once
	searchTracer trace.Tracer
)

// getTracer returns the OTel tracer, initializing it lazily so a provider
// installed after package init is still picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		searchTracer = otel.Tracer("github.com/comalice/watersort/internal/core")
	})
	return searchTracer
}

func recordSearch(r Result) {
	searchesTotal.WithLabelValues(r.Status.String()).Inc()
	searchIterations.Observe(float64(r.Iterations))
	searchVisited.Observe(float64(r.Visited))
	searchDuration.Observe(r.Duration.Seconds())
	if r.Status == StatusSolved {
		solutionLength.Observe(float64(len(r.Moves)))
	}
}
