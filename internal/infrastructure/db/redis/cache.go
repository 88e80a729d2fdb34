package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "cache:"

// Cache implements the byte-oriented response cache port on Redis, for
// deployments running more than one API instance. Per-entry TTL maps onto
// Redis key expiry; the capacity bound is the server's maxmemory eviction
// policy rather than an in-process count.
type Cache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCache creates a Cache wrapping the given Redis client.
func NewCache(client *redis.Client, log zerolog.Logger) *Cache {
	return &Cache{client: client, log: log}
}

// Get returns the value stored under key. Redis failures degrade to a cache
// miss: the caller falls back to the store and the API stays available.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key with the given expiry.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Delete removes the entry stored under key, if any.
func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache delete failed")
	}
}
