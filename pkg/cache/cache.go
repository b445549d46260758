package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is a TTL'd byte cache for external search results. Lookups are
// best-effort: a miss, an expired entry, and a backend failure all report
// not-found.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu    sync.RWMutex
	store map[string]memoryEntry
}

// NewMemoryCache returns an in-process Cache with per-entry expiry.
func NewMemoryCache() Cache {
	return &memoryCache{store: make(map[string]memoryEntry)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
}
