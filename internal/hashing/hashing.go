// Package hashing provides the evaluation cache used during a search.
package hashing

// Cache maps position keys to evaluation values.
type Cache interface {
	Get(key string) (int, bool)
	Put(key string, value int)
	Len() int
	Hits() uint64
	Misses() uint64
}

// EvalCache remembers static evaluations of positions seen during one
// search. It is not safe for concurrent use; see ThreadSafeEvalCache.
type EvalCache struct {
	table       map[string]int
	maxCapacity int // 0 means unlimited
	hits        uint64
	misses      uint64
}

// NewEvalCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity.
func NewEvalCache(maxCapacity int) *EvalCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &EvalCache{
		table:       make(map[string]int),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored value for key.
func (c *EvalCache) Get(key string) (int, bool) {
	v, ok := c.table[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Put stores a value. New keys are dropped once the cache is full.
func (c *EvalCache) Put(key string, value int) {
	if _, exists := c.table[key]; !exists && c.full() {
		return
	}
	c.table[key] = value
}

// Len returns the number of stored positions.
func (c *EvalCache) Len() int {
	return len(c.table)
}

// Hits returns how many lookups found a value.
func (c *EvalCache) Hits() uint64 {
	return c.hits
}

// Misses returns how many lookups found nothing.
func (c *EvalCache) Misses() uint64 {
	return c.misses
}

func (c *EvalCache) full() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}
