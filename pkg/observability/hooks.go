// Package observability provides hooks for instrumenting layout, render,
// and cache operations without a hard dependency on any metrics backend.
//
// The package uses a simple hooks pattern: hook interfaces per event
// category, no-op defaults, and registration at startup by main. That
// keeps the engine free of observability framework imports while letting
// deployments plug in OpenTelemetry, Prometheus, or plain logging.
//
// Register hooks once at application startup:
//
//	observability.SetEngineHooks(&myEngineHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Libraries emit events through the accessors:
//
//	observability.Engine().OnRenderStart(ctx, format, nodeCount)
//	// ... render ...
//	observability.Engine().OnRenderComplete(ctx, format, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events from layout and render operations.
type EngineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, nodeCount int)
	OnLayoutComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, format string, nodeCount int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopEngineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopEngineHooks) OnRenderStart(context.Context, string, int)                       {}
func (NoopEngineHooks) OnRenderComplete(context.Context, string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// Call once at application startup before any layout or render work.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
}
