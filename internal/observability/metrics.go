package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records repository call latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "holocron_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FavoriteMutations counts favorite writes by kind and operation.
	FavoriteMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_favorite_mutations_total",
		Help: "Total favorite rows created, repointed or deleted",
	}, []string{"kind", "operation"})

	// UpstreamRequests counts external catalog lookups by resource and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_upstream_requests_total",
		Help: "External catalog validation requests by outcome",
	}, []string{"resource", "outcome"})

	// UpstreamLatency records external catalog lookup latency.
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "holocron_upstream_request_duration_seconds",
		Help:    "External catalog validation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "holocron_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
	}, []string{"name"})

	// CircuitBreakerTransitions counts breaker state changes.
	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_circuit_breaker_transitions_total",
		Help: "Circuit breaker state transitions",
	}, []string{"name", "from", "to"})

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_redis_errors_total",
		Help: "Total Redis command errors",
	}, []string{"command"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
