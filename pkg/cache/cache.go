// Package cache stores rendered pages keyed by a hash of their source.
//
// Backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: persistent cache backed by a MongoDB collection
//   - [NullCache]: never stores anything
//
// Key construction is separate from storage: a [Keyer] derives keys from the
// source hash and the render options, and [ScopedKeyer] prefixes them so
// several tenants can share one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any connections held by the cache.
	Close() error
}

// PageKeyOpts holds the render options that change a page's output.
// Header carries page header overrides applied to markdown sources.
type PageKeyOpts struct {
	Format string `json:"format"`
	Manual string `json:"manual,omitempty"`
	Header string `json:"header,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PageKey returns the key of a rendered page.
	PageKey(sourceHash string, opts PageKeyOpts) string
}

// pageKeyVersion is bumped whenever rendering output changes for the same
// input, so stale pages are never served after an upgrade.
const pageKeyVersion = "page:v1"

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PageKey hashes the source hash together with opts.
func (DefaultKeyer) PageKey(sourceHash string, opts PageKeyOpts) string {
	return hashKey(pageKeyVersion, sourceHash, opts)
}
