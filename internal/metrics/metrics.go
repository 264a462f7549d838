package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters the transaction runner and middleware feed.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal  *prometheus.CounterVec
	RetriesTotal   *prometheus.CounterVec
	RollbacksTotal prometheus.Counter
	CacheHitsTotal prometheus.Counter
	CacheMissTotal prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoboard_http_requests_total",
			Help: "HTTP requests by method and status.",
		}, []string{"method", "status"}),
		RetriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoboard_store_retries_total",
			Help: "Mutation retries caused by transient store failures, by operation.",
		}, []string{"operation"}),
		RollbacksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geoboard_store_stale_rollbacks_total",
			Help: "Rollbacks of transactions left open by a prior failed attempt.",
		}),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geoboard_read_cache_hits_total",
			Help: "Read-cache hits.",
		}),
		CacheMissTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geoboard_read_cache_misses_total",
			Help: "Read-cache misses.",
		}),
	}
}
