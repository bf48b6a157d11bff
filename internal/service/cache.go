// Package service contains the business logic for the packlist service.
package service

import (
	"sync"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU caching with TTL expiration for
// generation results. It implements the cache.Cache interface.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry represents a single cached item with expiration tracking.
type cacheEntry struct {
	key       string
	value     model.Packlist
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a new TTL-based LRU cache with the specified capacity
// and TTL. A background goroutine periodically cleans up expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached value, reporting a miss for expired entries.
func (c *ttlCache) Get(key string) (model.Packlist, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok || time.Now().After(entry.expiresAt) {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return model.Packlist{}, false
	}

	c.moveToFront(entry)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when at capacity.
func (c *ttlCache) Set(key string, value model.Packlist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	if len(c.items) >= c.capacity && c.tail != nil {
		c.removeEntry(c.tail)
		c.evictions++
		metrics.RecordCacheOperation("set", "eviction")
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.pushFront(entry)
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
	}
}

// Clear removes all entries.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop gracefully shuts down the cleanup goroutine.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cache.Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// startCleanup periodically removes expired entries until Stop is called.
func (c *ttlCache) startCleanup() {
	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

// removeExpired drops every entry past its expiry.
func (c *ttlCache) removeExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			c.evictions++
		}
	}
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// pushFront inserts an entry at the head of the LRU list.
func (c *ttlCache) pushFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// moveToFront marks an entry as most recently used.
func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if c.head == entry {
		return
	}
	c.unlink(entry)
	c.pushFront(entry)
}

// removeEntry unlinks an entry and deletes it from the index.
func (c *ttlCache) removeEntry(entry *cacheEntry) {
	c.unlink(entry)
	delete(c.items, entry.key)
}

// unlink detaches an entry from the LRU list.
func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else if c.head == entry {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else if c.tail == entry {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
