package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of requests in flight",
		},
	)

	PageCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_lookups_total",
			Help: "Page cache lookups by result",
		},
		[]string{"result"},
	)

	PageCacheClears = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "page_cache_clears_total",
			Help: "Number of explicit page cache purges",
		},
	)

	FollowEdges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_edges_total",
			Help: "Follow edges created or deleted",
		},
		[]string{"action"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HttpRequestsTotal,
			HttpRequestDuration,
			ActiveConnections,
			PageCacheLookups,
			PageCacheClears,
			FollowEdges,
		)
	})
}

func CacheHit()  { PageCacheLookups.WithLabelValues("hit").Inc() }
func CacheMiss() { PageCacheLookups.WithLabelValues("miss").Inc() }

func FollowCreated() { FollowEdges.WithLabelValues("created").Inc() }
func FollowDeleted() { FollowEdges.WithLabelValues("deleted").Inc() }
