// Package observability provides hooks for metrics and tracing.
//
// Instrumentation is optional: the counting pipeline and the HTTP server
// emit events through hook interfaces, and nothing is recorded unless a
// backend registers an implementation at startup. The metrics package
// provides a Prometheus backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    m := metrics.New()
//	    m.Register()
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Count().OnCountStart(ctx, "Dn", 6)
//	// ... enumerate and reduce ...
//	observability.Count().OnCountComplete(ctx, "Dn", "num", configs, orbits, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Count Hooks
// =============================================================================

// CountHooks receives events from the counting pipeline.
type CountHooks interface {
	// OnCountStart records the start of a computation on n beads.
	OnCountStart(ctx context.Context, group string, n int)

	// OnCountComplete records a finished computation with the size of the
	// configuration set and the number of orbits found.
	OnCountComplete(ctx context.Context, group, output string, configs, orbits int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request on a route pattern.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCountHooks is a no-op implementation of CountHooks.
type NoopCountHooks struct{}

func (NoopCountHooks) OnCountStart(context.Context, string, int) {}
func (NoopCountHooks) OnCountComplete(context.Context, string, string, int, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	countHooks CountHooks = NoopCountHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetCountHooks registers custom counting hooks.
// This should be called once at application startup before any computation.
func SetCountHooks(h CountHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		countHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Count returns the registered counting hooks.
func Count() CountHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return countHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	countHooks = NoopCountHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
