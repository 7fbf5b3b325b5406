package memo

import (
	"sync"
	"sync/atomic"
)

// Func is a recurrence body. It receives the owning cache so it can
// resolve sub-results through Get, and must be deterministic.
type Func[K comparable, V any] func(c *Cache[K, V], k K) V

// Cache memoizes a recurrence body keyed by K. The zero value is not
// usable; construct instances with New.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]V
	fn       Func[K, V]
	computed atomic.Int64
}

// New returns an empty cache wrapping the given recurrence body.
func New[K comparable, V any](fn Func[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
		fn:      fn,
	}
}

// Get returns the memoized value for k, evaluating the recurrence body
// on first request. The body may recursively call Get for related
// keys; each sub-result is stored as its frame completes, so
// overlapping references reuse stored values instead of recomputing.
//
// Complexity: O(1) amortized per key after its first computation.
func (c *Cache[K, V]) Get(k K) V {
	c.mu.Lock()
	v, ok := c.entries[k]
	c.mu.Unlock()
	if ok {
		return v
	}

	c.computed.Add(1)
	// Evaluate outside the lock: the body re-enters Get.
	v = c.fn(c, k)

	c.mu.Lock()
	if prev, ok := c.entries[k]; ok {
		// A racing computation stored first; keep its value.
		v = prev
	} else {
		c.entries[k] = v
	}
	c.mu.Unlock()

	return v
}

// Warm resolves keys in the given order, populating the cache
// iteratively. Listing keys from base cases upward bounds the
// recursion depth of each individual Get by the recurrence's step
// size instead of the full argument.
func (c *Cache[K, V]) Warm(keys ...K) {
	for _, k := range keys {
		c.Get(k)
	}
}

// Len reports how many distinct keys are stored.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Computations reports how many times the recurrence body has been
// invoked. Under single-goroutine use this equals the number of
// distinct keys ever requested.
func (c *Cache[K, V]) Computations() int64 {
	return c.computed.Load()
}
