package ports

import (
	"context"
	"time"
)

// Cache is a minimal byte-oriented key/value cache with per-entry TTL.
// Values are raw []byte so callers can marshal to JSON or any other format.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
