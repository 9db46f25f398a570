package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rentora/internal/shared/logger"
)

// DefaultStatsTTL is how long dashboard figures may lag behind reality.
const DefaultStatsTTL = 60 * time.Second

// StatsCache caches JSON-encoded dashboard payloads per tenant. A nil
// client degrades to a no-op so the dashboards work without Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewStatsCache(client *redis.Client, ttl time.Duration, log logger.Interface) *StatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl, logger: log}
}

func statsKey(scope string, tenantID uint) string {
	return fmt.Sprintf("rentora:stats:%s:%d", scope, tenantID)
}

// Get unmarshals the cached payload into dest and reports whether there
// was a hit. Cache errors are logged and treated as misses.
func (c *StatsCache) Get(ctx context.Context, scope string, tenantID uint, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, statsKey(scope, tenantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("stats cache read failed", "scope", scope, "tenant_id", tenantID, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warnw("stats cache payload corrupt", "scope", scope, "tenant_id", tenantID, "error", err)
		return false
	}
	return true
}

// Set stores the payload with the cache TTL. Failures are logged only.
func (c *StatsCache) Set(ctx context.Context, scope string, tenantID uint, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warnw("failed to encode stats payload", "scope", scope, "error", err)
		return
	}
	if err := c.client.Set(ctx, statsKey(scope, tenantID), raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("stats cache write failed", "scope", scope, "tenant_id", tenantID, "error", err)
	}
}

// Invalidate drops a tenant's cached payload, used after writes that
// should be visible immediately.
func (c *StatsCache) Invalidate(ctx context.Context, scope string, tenantID uint) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey(scope, tenantID)).Err(); err != nil {
		c.logger.Warnw("stats cache invalidation failed", "scope", scope, "tenant_id", tenantID, "error", err)
	}
}
