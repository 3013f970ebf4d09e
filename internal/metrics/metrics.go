// Package metrics holds the prometheus instrumentation shared by the stores, the interface
// cache and the HTTP layer. A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lukso_indexer"

// Metrics tracks store, cache and request metrics.
// The atomic counters are always maintained, the prometheus collectors only after Register.
type Metrics struct {
	CacheHits      atomic.Uint64
	CacheMisses    atomic.Uint64
	CacheRefreshes atomic.Uint64

	registerOnce        sync.Once
	queryDuration       *prometheus.HistogramVec
	queryErrors         *prometheus.CounterVec
	cacheHitsCounter    prometheus.Counter
	cacheMissesCounter  prometheus.Counter
	cacheRefreshCounter prometheus.Counter
	httpRequests        *prometheus.CounterVec
}

// New creates an unregistered Metrics
func New() *Metrics {
	return &Metrics{}
}

// Register registers the collectors with registry.
// A nil registry is a no-op, and only the first call has an effect.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if m == nil || registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.queryDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Duration of store operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"store", "operation"})

		m.queryErrors = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_query_errors_total",
			Help:      "Total number of failed store operations",
		}, []string{"store", "operation"})

		m.cacheHitsCounter = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_interface_cache_hits_total",
			Help:      "Total number of contract interface cache hits",
		})

		m.cacheMissesCounter = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_interface_cache_misses_total",
			Help:      "Total number of contract interface cache misses",
		})

		m.cacheRefreshCounter = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_interface_cache_refreshes_total",
			Help:      "Total number of contract interface cache reloads from storage",
		})

		m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"})
	})
}

// ObserveQuery records the duration and outcome of a store operation
func (m *Metrics) ObserveQuery(store, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	if m.queryDuration != nil {
		m.queryDuration.WithLabelValues(store, operation).Observe(time.Since(started).Seconds())
	}
	if err != nil && m.queryErrors != nil {
		m.queryErrors.WithLabelValues(store, operation).Inc()
	}
}

// IncCacheHit increments the cache hit counter
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Add(1)
	if m.cacheHitsCounter != nil {
		m.cacheHitsCounter.Inc()
	}
}

// IncCacheMiss increments the cache miss counter
func (m *Metrics) IncCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Add(1)
	if m.cacheMissesCounter != nil {
		m.cacheMissesCounter.Inc()
	}
}

// IncCacheRefresh increments the cache refresh counter
func (m *Metrics) IncCacheRefresh() {
	if m == nil {
		return
	}
	m.CacheRefreshes.Add(1)
	if m.cacheRefreshCounter != nil {
		m.cacheRefreshCounter.Inc()
	}
}

// ObserveRequest counts one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int) {
	if m == nil || m.httpRequests == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
