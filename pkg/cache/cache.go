package cache

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound indicates the key does not exist or has expired.
	ErrNotFound = errors.New("cache: key not found")

	// ErrClosed indicates the cache has been closed.
	ErrClosed = errors.New("cache: closed")

	// ErrMarshal and ErrUnmarshal wrap value serialization failures in
	// backends that store bytes.
	ErrMarshal   = errors.New("cache: failed to marshal value")
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")
)

// Cache is a key-value cache with per-entry TTL.
//
// TTL semantics for Set:
//   - positive: the entry expires after this duration
//   - zero or negative: the entry never expires
type Cache[V any] interface {
	// Get retrieves a value by key. Returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources (background goroutines, connections).
	Close() error
}

var sfGroup singleflight.Group

// GetOrSet retrieves a value, or computes it via fn on a miss. Concurrent
// misses on the same key share one fn call through singleflight, so a cold
// key cannot stampede the backing store. The computed value is cached
// best-effort with ttl.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, ttl time.Duration, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := sfGroup.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	value := v.(V)
	_ = c.Set(ctx, key, value, ttl)
	return value, nil
}
