// Package cache stores rendered artifacts keyed by content hash, so a
// tree that has already been laid out and rendered is never rendered
// twice. Backends: a file cache for the CLI, a Redis cache for the
// HTTP facade, and a null cache for tests and opt-out.
package cache

import (
	"context"
	"time"
)

// Cache is the backend contract. Get reports a miss with ok == false
// rather than an error; errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys for the artifact kinds the engine produces.
type Keyer interface {
	// RenderKey keys a rendered image by the hash of its DOT document
	// and the output format.
	RenderKey(dotHash, format string) string

	// DiffKey keys a computed diff by the hashes of both trees and the
	// option fingerprint.
	DiffKey(leftHash, rightHash, opts string) string
}

// DefaultKeyer produces versioned, hash-based keys. Bump the version
// component when a key's content format changes incompatibly.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(dotHash, format string) string {
	return hashKey("render:v1", dotHash, format)
}

// DiffKey generates a key for a cached diff result.
func (k *DefaultKeyer) DiffKey(leftHash, rightHash, opts string) string {
	return hashKey("diff:v1", leftHash, rightHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple tenants or
// deployments can share one backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(dotHash, format string) string {
	return k.prefix + k.inner.RenderKey(dotHash, format)
}

// DiffKey generates a prefixed diff key.
func (k *ScopedKeyer) DiffKey(leftHash, rightHash, opts string) string {
	return k.prefix + k.inner.DiffKey(leftHash, rightHash, opts)
}
