package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Register(prometheus.NewRegistry())
		m.ObserveQuery("data", "GetContractByAddress", time.Now(), errors.New("boom"))
		m.IncCacheHit()
		m.IncCacheMiss()
		m.IncCacheRefresh()
		m.ObserveRequest("GET", "/health", 200)
	})
}

func TestMetrics_CountersWithoutRegistry(t *testing.T) {
	m := New()

	m.IncCacheHit()
	m.IncCacheHit()
	m.IncCacheMiss()
	m.IncCacheRefresh()

	assert.Equal(t, uint64(2), m.CacheHits.Load())
	assert.Equal(t, uint64(1), m.CacheMisses.Load())
	assert.Equal(t, uint64(1), m.CacheRefreshes.Load())
}

func TestMetrics_Register(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New()
	m.Register(registry)
	m.Register(registry) // second call must not panic on duplicate registration

	m.IncCacheHit()
	m.ObserveQuery("data", "InsertContract", time.Now(), nil)
	m.ObserveQuery("data", "InsertContract", time.Now(), errors.New("boom"))
	m.ObserveRequest("GET", "/api/v1/addresses", 200)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheHitsCounter))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.queryErrors.WithLabelValues("data", "InsertContract")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/addresses", "200")))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
