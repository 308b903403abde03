package hashing

import "sync"

// ThreadSafeEvalCache wraps EvalCache with mutex protection for concurrent access.
type ThreadSafeEvalCache struct {
	cache *EvalCache
	mu    sync.RWMutex
}

// NewThreadSafeEvalCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeEvalCache(maxCapacity int) *ThreadSafeEvalCache {
	return &ThreadSafeEvalCache{
		cache: NewEvalCache(maxCapacity),
	}
}

// Get returns the stored value for key. It takes the write lock because
// lookups update the hit counters.
func (c *ThreadSafeEvalCache) Get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(key)
}

// Put stores a value.
func (c *ThreadSafeEvalCache) Put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Put(key, value)
}

// Len returns the number of stored positions.
func (c *ThreadSafeEvalCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Hits returns how many lookups found a value.
func (c *ThreadSafeEvalCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Hits()
}

// Misses returns how many lookups found nothing.
func (c *ThreadSafeEvalCache) Misses() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Misses()
}
