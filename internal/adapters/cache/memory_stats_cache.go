package cache

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/metrics"
)

var _ services.StatsCache = (*MemoryStatsCache)(nil)

const DefaultMemoryEntries = 256

// MemoryStatsCache is the in-process fallback used when redis is not
// configured. It evicts the oldest entry once full.
type MemoryStatsCache struct {
	mu       sync.Mutex
	entries  map[string]*domain.Statistics
	order    []string
	capacity int
}

func NewMemoryStatsCache(capacity int) *MemoryStatsCache {
	if capacity <= 0 {
		capacity = DefaultMemoryEntries
	}
	return &MemoryStatsCache{
		entries:  make(map[string]*domain.Statistics, capacity),
		capacity: capacity,
	}
}

func (c *MemoryStatsCache) Get(_ context.Context, key string) (*domain.Statistics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.entries[key]
	if !ok {
		metrics.StatsCacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}

	metrics.StatsCacheRequests.WithLabelValues(metrics.CacheHit).Inc()
	return stats.Clone(), true
}

func (c *MemoryStatsCache) Set(_ context.Context, key string, stats *domain.Statistics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}

	c.entries[key] = stats.Clone()
}

func (c *MemoryStatsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
