// Package cache holds the in-process contract interface cache of the structure store.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lukso-network/lukso-indexer-api/internal/adapter"
	"github.com/lukso-network/lukso-indexer-api/internal/metrics"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

// DefaultInterfaceTTL is the refresh interval of the contract interface cache
const DefaultInterfaceTTL = 60 * time.Minute

// Loader reads the full set of contract interfaces from storage
type Loader func(ctx context.Context) ([]schema.ContractInterface, error)

// InterfaceCache keeps every known contract interface in memory.
//
// Reads are served from memory. All reloads the full set when the cache is empty or older
// than the TTL, and Append makes freshly inserted rows visible immediately. Between reloads
// the content may drift from storage (rows written by other processes are only picked up by
// the next reload).
type InterfaceCache struct {
	mu          sync.RWMutex
	entries     []schema.ContractInterface
	lastRefresh time.Time
	ttl         time.Duration
	clock       adapter.Clock
	metrics     *metrics.Metrics

	// refreshMu serialises reloads so concurrent stale readers trigger a single load
	refreshMu sync.Mutex
	// appended collects the Append calls made while a reload is in flight, guarded by mu
	refreshing bool
	appended   []schema.ContractInterface
}

// NewInterfaceCache creates an empty cache. A non-positive ttl falls back to DefaultInterfaceTTL.
func NewInterfaceCache(ttl time.Duration, clock adapter.Clock, m *metrics.Metrics) *InterfaceCache {
	if ttl <= 0 {
		ttl = DefaultInterfaceTTL
	}
	if clock == nil {
		clock = adapter.NewClock()
	}
	return &InterfaceCache{
		ttl:     ttl,
		clock:   clock,
		metrics: m,
	}
}

// Find returns the cached interface with the given id without touching storage
func (c *InterfaceCache) Find(id string) (*schema.ContractInterface, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.entries {
		if c.entries[i].ID == id {
			found := c.entries[i]
			c.metrics.IncCacheHit()
			return &found, true
		}
	}

	c.metrics.IncCacheMiss()
	return nil, false
}

// Append adds an interface to the cache (write-through after a successful insert)
func (c *InterfaceCache) Append(ci schema.ContractInterface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, ci)
	if c.refreshing {
		c.appended = append(c.appended, ci)
	}
}

// All returns a copy of the cached interfaces, reloading them with load first when the
// cache is empty or expired. A failed reload returns the error and leaves the cache as is.
func (c *InterfaceCache) All(ctx context.Context, load Loader) ([]schema.ContractInterface, error) {
	if entries, ok := c.fresh(); ok {
		return entries, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// another caller may have reloaded while we waited
	if entries, ok := c.fresh(); ok {
		return entries, nil
	}

	c.mu.Lock()
	c.refreshing = true
	c.appended = nil
	c.mu.Unlock()

	now := c.clock.Now()
	loaded, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	appended := c.appended
	c.refreshing = false
	c.appended = nil
	if err != nil {
		return nil, err
	}
	c.metrics.IncCacheRefresh()

	// the snapshot may predate rows appended during the load
	c.entries = merge(loaded, appended)
	c.lastRefresh = now

	return clone(c.entries), nil
}

// Invalidate empties the cache, the next All reloads from storage
func (c *InterfaceCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.lastRefresh = time.Time{}
}

// Len returns the number of cached interfaces
func (c *InterfaceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *InterfaceCache) fresh() ([]schema.ContractInterface, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 || c.clock.Since(c.lastRefresh) >= c.ttl {
		return nil, false
	}
	return clone(c.entries), true
}

// merge returns loaded followed by the appended interfaces it does not already hold
func merge(loaded, appended []schema.ContractInterface) []schema.ContractInterface {
	if len(appended) == 0 {
		return loaded
	}

	seen := make(map[string]struct{}, len(loaded))
	for _, ci := range loaded {
		seen[ci.ID] = struct{}{}
	}

	merged := clone(loaded)
	for _, ci := range appended {
		if _, ok := seen[ci.ID]; ok {
			continue
		}
		seen[ci.ID] = struct{}{}
		merged = append(merged, ci)
	}
	return merged
}

func clone(entries []schema.ContractInterface) []schema.ContractInterface {
	out := make([]schema.ContractInterface, len(entries))
	copy(out, entries)
	return out
}
