package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/blog-platform/pkg/logger"
)

// Cache is a small JSON cache on top of Redis. A nil *Cache is a no-op,
// so callers do not need to branch on Redis availability.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given default TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

// GetJSON loads a cached value into dest, returning false on miss
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache entry corrupt, dropping")
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value under key with the default TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Invalidate drops the given keys
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn(ctx).Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}
