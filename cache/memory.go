package cache

import (
	"sync"
	"time"

	"github.com/Gangesh54321/tqa"
)

type cacheEntry struct {
	result    *tqa.QAResult
	timestamp time.Time
}

// InMemoryCache is a thread-safe in-memory ResultCache with TTL support.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache. A non-positive ttlSeconds
// means entries never expire.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	return &InMemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves a result from the cache, evicting it first if expired.
func (c *InMemoryCache) Get(key string) (*tqa.QAResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.ttl > 0 && time.Since(entry.timestamp) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.result, true
}

// Set stores a result in the cache.
func (c *InMemoryCache) Set(key string, result *tqa.QAResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, timestamp: time.Now()}
}

// Len returns the number of entries in the cache, including expired ones.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes every entry from the cache.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Entries returns every non-expired entry, for use by Exporter.
func (c *InMemoryCache) Entries() map[string]*tqa.QAResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]*tqa.QAResult, len(c.entries))
	now := time.Now()
	for key, entry := range c.entries {
		if c.ttl > 0 && now.Sub(entry.timestamp) > c.ttl {
			continue
		}
		out[key] = entry.result
	}
	return out
}

var _ resultCache = (*InMemoryCache)(nil)
