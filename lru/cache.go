// Package lru provides a fixed-capacity least-recently-used cache with O(1)
// Get and Put.
package lru

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")
)

// Options configures the cache.
type Options[K comparable, V any] struct {
	// OnEvict is called once for every entry evicted to make room for a new key.
	// It runs after the victim has left the cache and before the new key is added.
	OnEvict func(key K, value V)
}

// Cache is a key-value store bounded to a fixed number of entries. Once full,
// adding a new key evicts the least recently used one.
//
// Cache is not safe for concurrent use. Callers sharing it across goroutines
// must guard every method, Get included, with a single lock.
type Cache[K comparable, V any] struct {
	// Fixed at construction.
	capacity int
	// Index from key to its node in the recency list.
	index map[K]*entry[K, V]
	// Recency tracking list, most recently used first.
	list *recencyList[K, V]

	onEvict func(key K, value V)
}

// New returns a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Options[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	var onEvict func(K, V)
	if len(opts) > 0 {
		onEvict = opts[0].OnEvict
	}

	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]*entry[K, V], capacity),
		list:     newRecencyList[K, V](),
		onEvict:  onEvict,
	}, nil
}

// Get returns the value stored for key and marks it as most recently used.
// The boolean is false if the key is not cached, in which case nothing changes.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	node, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.list.moveToFront(node)
	return node.value, true
}

// Put stores value for key and marks it as most recently used. If key is new
// and the cache is full, the least recently used entry is evicted first.
func (c *Cache[K, V]) Put(key K, value V) {
	if node, ok := c.index[key]; ok {
		node.value = value
		c.list.moveToFront(node)
		return
	}

	if len(c.index) == c.capacity {
		c.evictOldest()
	}

	node := &entry[K, V]{key: key, value: value}
	c.list.pushFront(node)
	c.index[key] = node
}

// evictOldest drops the least recently used entry from both the index and the list.
// The victim's key is read before it is unlinked.
func (c *Cache[K, V]) evictOldest() {
	victim, ok := c.list.back()
	if !ok {
		return
	}

	delete(c.index, victim.key)
	c.list.popBack()

	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.list.len()
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// All yields every cached key-value pair from most to least recently used.
// Iterating does not change recency. The cache must not be modified during iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for node := range c.list.all() {
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}

// Values yields the cached values from most to least recently used.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for node := range c.list.all() {
			if !yield(node.value) {
				return
			}
		}
	}
}
