// Package cache provides a keyed request cache: identical keys share one
// in-flight fetch, fresh results are served from memory, and the whole
// cache can be dropped when the identity behind it changes.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a cached result is considered fresh.
const DefaultTTL = 30 * time.Second

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is a string-keyed fetch cache. A result lands under the key that
// requested it, so a fetch superseded by a newer key can never clobber the
// current key's entry.
type Cache[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry[V]
}

// New creates a cache with the given freshness window. A non-positive ttl
// uses DefaultTTL.
func New[V any](ttl time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the value for key, fetching it with fn if the cached entry
// is absent or stale. Concurrent calls for the same key share a single
// fetch. Errors are returned to every waiter and never cached.
func (c *Cache[V]) Get(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Another waiter may have completed the fetch while this call was
		// queued behind it.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Sub(e.fetchedAt) < c.ttl {
			return e.value, nil
		}

		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry[V]{value: value, fetchedAt: c.now()}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Peek returns the cached value for key if present and fresh, without
// fetching.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Invalidate drops the entry for key.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll drops every entry. Called on logout so one identity's
// results are never served to the next.
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// SetClock overrides the cache's clock. Tests only.
func (c *Cache[V]) SetClock(now func() time.Time) {
	c.now = now
}
