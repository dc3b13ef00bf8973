package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CacheHealthCheck implements ports.HealthChecker for the Redis instance
// backing the balance cache, idempotency records and rate limits. All three
// write, so the check writes too and catches read-only replicas or a full
// instance that PING alone reports healthy.
type CacheHealthCheck struct {
	client *goredis.Client
	key    string
}

func NewCacheHealthCheck(client *goredis.Client) *CacheHealthCheck {
	return &CacheHealthCheck{client: client, key: keyPrefix + "health"}
}

func (h *CacheHealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, h.key, time.Now().Unix(), 10*time.Second).Err(); err != nil {
		return fmt.Errorf("cache write check: %w", err)
	}
	return nil
}

func (h *CacheHealthCheck) Name() string {
	return "economy_cache"
}
