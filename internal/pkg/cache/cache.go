package cache

import (
	"context"
	"regexp"
	"sync"
	"time"

	"vinyl-storefront/internal/pkg/clock"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is an in-memory key/value store with a fixed per-cache TTL.
// Entries older than the TTL are treated as absent and evicted lazily on
// read; there is no background sweep. Instances are constructed explicitly
// and injected, one per resource family (vinyl, user, cart).
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration, clk clock.Clock) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		clock:   clk,
		entries: make(map[string]entry[V]),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if c.clock.Now().Sub(e.storedAt) > c.ttl {
		c.Invalidate(key)
		return zero, false
	}
	return e.value, true
}

// Set replaces the entry wholesale; entries are never partially updated.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, storedAt: c.clock.Now()}
	c.mu.Unlock()
}

func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[V]) InvalidatePattern(pattern *regexp.Regexp) {
	c.mu.Lock()
	for key := range c.entries {
		if pattern.MatchString(key) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// GetOrLoad returns the cached value when fresh, otherwise invokes loader
// and stores its result. Concurrent callers missing on the same key may
// trigger duplicate loads; loads are idempotent reads so no flight
// coalescing is done. A loader failure caches nothing and the next call
// retries.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := loader(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}
