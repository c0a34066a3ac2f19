package cache

import (
	"context"
	"sync"
	"time"

	"github.com/voyago/travelsearch/internal/models"
)

// MemoryCache is a mutex-guarded in-process TTL cache for hosts running
// without Redis. Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	options   []models.TravelOption
	expiresAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key Key) ([]models.TravelOption, bool) {
	k := generateKey(key)

	c.mu.RLock()
	entry, ok := c.entries[k]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, k)
		c.mu.Unlock()
		return nil, false
	}

	return entry.options, true
}

func (c *MemoryCache) Set(ctx context.Context, key Key, options []models.TravelOption) error {
	c.mu.Lock()
	c.entries[generateKey(key)] = memoryEntry{
		options:   options,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
