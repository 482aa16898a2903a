// Package cache stores computed counting results between runs.
//
// A [Cache] is a byte-oriented key/value store with expiry. Three backends
// are provided:
//
//   - [FileCache] keeps entries as JSON files under a directory (CLI default)
//   - [RedisCache] keeps entries in Redis (shared by servers)
//   - [NullCache] stores nothing (caching disabled)
//
// Keys are derived by a [Keyer] so that every backend agrees on the key of a
// given computation. Values are opaque to the cache; the pipeline package
// encodes results as JSON.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// TTLCount is the lifetime of a cached counting result. Results are
	// pure functions of their inputs, so the TTL only bounds disk usage.
	TTLCount = 30 * 24 * time.Hour

	// TTLDrawing is the lifetime of a cached quotient drawing.
	TTLDrawing = 7 * 24 * time.Hour
)

// Cache is a key/value store with per-entry expiry.
//
// Get reports a miss with (nil, false, nil); an error means the backend
// itself failed. A ttl of zero on Set stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
