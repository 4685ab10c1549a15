package lru

import "iter"

// entry is a cached key-value pair linked into the recency list.
type entry[K comparable, V any] struct {
	key   K
	value V

	// Linked list pointers for recency tracking
	prev *entry[K, V]
	next *entry[K, V]
}

// recencyList is a doubly-linked list ordered from most to least recently used.
// head and tail are sentinels, so every real entry always has two neighbours
// and no operation branches on an empty list.
// All pointer manipulation is centralized here.
type recencyList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	size int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	l := &recencyList[K, V]{
		head: &entry[K, V]{},
		tail: &entry[K, V]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront inserts a node right after the head sentinel (most recently used).
// The node must not be linked into any list.
func (l *recencyList[K, V]) pushFront(node *entry[K, V]) {
	next := l.head.next
	node.prev = l.head
	node.next = next
	l.head.next = node
	next.prev = node
	l.size++
}

// remove unlinks a node from anywhere in the list. The node's own pointers
// are left stale and must not be read until it is pushed again.
func (l *recencyList[K, V]) remove(node *entry[K, V]) {
	node.prev.next = node.next
	node.next.prev = node.prev
	l.size--
}

// moveToFront moves an existing node to the most recently used position.
func (l *recencyList[K, V]) moveToFront(node *entry[K, V]) {
	l.remove(node)
	l.pushFront(node)
}

// back returns the least recently used node, or false if the list is empty.
func (l *recencyList[K, V]) back() (*entry[K, V], bool) {
	if l.size == 0 {
		return nil, false
	}
	return l.tail.prev, true
}

// popBack removes the least recently used node. The list must not be empty.
func (l *recencyList[K, V]) popBack() {
	l.remove(l.tail.prev)
}

func (l *recencyList[K, V]) len() int {
	return l.size
}

// all yields the real nodes from most to least recently used.
func (l *recencyList[K, V]) all() iter.Seq[*entry[K, V]] {
	return func(yield func(*entry[K, V]) bool) {
		for node := l.head.next; node != l.tail; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}
