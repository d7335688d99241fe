// Package cache provides the storage backends behind the registry client's
// response cache.
//
// A [Cache] stores opaque byte payloads under string keys. Freshness policy
// (TTL, ETag revalidation, stale fallback) lives in the HTTP client; backends
// only store and return bytes, and keep entries until they are overwritten,
// deleted or cleared.
//
// # Backends
//
//   - [FileCache]: one JSON file per key under the user cache directory. The
//     default for CLI use.
//   - [RedisCache]: a shared Redis instance, for teams or CI runners that want
//     one warm cache.
//   - [NullCache]: stores nothing. Used by --no-cache.
//
// # Keys
//
// Keys are produced by a [Keyer] so every backend agrees on their shape:
//
//	k := cache.NewDefaultKeyer()
//	k.IconKey("lucide", "home") // "icon:lucide:home"
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored payload and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// overwritten or removed.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Clear empties c if it supports clearing. Backends that do not are left
// untouched and report zero entries.
func Clear(ctx context.Context, c Cache) (int, error) {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return 0, nil
}
