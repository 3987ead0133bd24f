// Package cache stores rendered artifacts between CLI runs.
//
// Rendering is cheap for small trees, but SVG output goes through Graphviz
// and large documents are re-read on every invocation. The pipeline keys
// each artifact by a hash of the input document and every option that
// affects its bytes, so a cache hit is always byte-identical to a fresh
// render.
//
// Two implementations are provided:
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [NullCache]: never stores anything (--no-cache, tests)
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
