// Package cache stores rendered artifacts between runs.
//
// Layout is cheap, but PDF and PNG conversion shells out to rsvg-convert
// and the HTTP server sees the same deck many times. Artifacts are keyed by
// a hash of the deck and the options that influence the output, so a change
// to either produces a new key and stale entries simply expire.
//
// Three backends are provided:
//
//   - [FileCache] for the CLI, one file per entry below a directory
//   - [RedisCache] for servers sharing a cache
//   - [NullCache] when caching is disabled
package cache

import (
	"context"
	"time"
)

// TTLArtifact is the lifetime of a rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with expiring entries. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
