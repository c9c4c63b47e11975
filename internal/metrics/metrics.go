// Package metrics holds the prometheus collectors shared by the services and
// the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// StatsComputations counts full engine runs (cache misses included).
	StatsComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kanso_stats_computations_total",
		Help: "Total statistics computations performed by the analytics engine",
	})

	// StatsCacheRequests counts statistics cache lookups by result.
	StatsCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanso_stats_cache_requests_total",
		Help: "Statistics cache lookups by result",
	}, []string{"result"})

	// WorkerJobs counts background refresh jobs by outcome.
	WorkerJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanso_stats_worker_jobs_total",
		Help: "Background statistics refresh jobs by outcome",
	}, []string{"outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanso_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kanso_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"method", "route"})
)
