package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/metrics"
)

var _ services.StatsCache = (*RedisStatsCache)(nil)

const DefaultStatsTTL = 30 * time.Minute

// RedisStatsCache stores statistics as JSON under "stats:<fingerprint>".
// Entries are content-addressed, so they never need invalidation; the TTL
// only bounds memory.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &RedisStatsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisStatsCache) cacheKey(fingerprint string) string {
	return "stats:" + fingerprint
}

func (c *RedisStatsCache) Get(ctx context.Context, fingerprint string) (*domain.Statistics, bool) {
	key := c.cacheKey(fingerprint)

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CACHE] Redis read error: %v", err)
			metrics.StatsCacheRequests.WithLabelValues(metrics.CacheError).Inc()
			return nil, false
		}
		metrics.StatsCacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}

	var stats domain.Statistics
	if err := json.Unmarshal(val, &stats); err != nil {
		log.Printf("[CACHE] Corrupted statistics under %s, cleaning up key", key)
		c.client.Del(ctx, key)
		metrics.StatsCacheRequests.WithLabelValues(metrics.CacheError).Inc()
		return nil, false
	}

	metrics.StatsCacheRequests.WithLabelValues(metrics.CacheHit).Inc()
	return &stats, true
}

func (c *RedisStatsCache) Set(ctx context.Context, fingerprint string, stats *domain.Statistics) {
	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("[CACHE] Failed to encode statistics: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.cacheKey(fingerprint), data, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
}
