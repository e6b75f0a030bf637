package mem

import (
	"sync"
	"time"
)

// ResponseCache holds rendered listing payloads keyed by query signature.
// Entries expire a fixed TTL after the write (absolute, not sliding) and are
// evicted lazily on the next lookup of the same key. Scope is the process:
// each instance caches independently.
type ResponseCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, payload interface{})
}

type cacheEntry struct {
	payload  interface{}
	expireAt time.Time
}

type TTLCache struct {
	mu      sync.RWMutex
	data    map[string]cacheEntry
	ttl     time.Duration
	nowFunc func() time.Time // injectable clock for testing
}

func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		data:    make(map[string]cacheEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if !c.nowFunc().Before(e.expireAt) {
		delete(c.data, key) // cleanup expired
		return nil, false
	}
	return e.payload, true
}

func (c *TTLCache) Set(key string, payload interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry{
		payload:  payload,
		expireAt: c.nowFunc().Add(c.ttl),
	}
}
