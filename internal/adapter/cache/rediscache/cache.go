// Package rediscache backs the result cache with Redis. A cache hit lets
// the pipeline skip the external LLM call entirely for identical profiles.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unite-hq/mentorlaunch/internal/adapter/observability"
)

// Cache implements domain.ResultCache over a Redis client.
type Cache struct {
	rdb *redis.Client
}

// New constructs a Cache for the given address and database.
func New(addr string, db int) *Cache {
	return &Cache{rdb: redis.NewClient(&redis.Options{Addr: addr, DB: db})}
}

// NewWithClient wraps an existing client; tests use this with miniredis.
func NewWithClient(rdb *redis.Client) *Cache { return &Cache{rdb: rdb} }

// Get returns the stored value and whether it was present. redis.Nil is a
// miss, not an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			observability.CacheRequestsTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		observability.CacheRequestsTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("op=cache.get: %w", err)
	}
	observability.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return b, true, nil
}

// Set stores the value under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("op=cache.set: %w", err)
	}
	return nil
}

// Ping verifies connectivity for readiness checks.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
