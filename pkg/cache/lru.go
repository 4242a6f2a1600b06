package cache

import (
	"sync"
)

// node is a doubly linked list entry.
type node struct {
	key   string
	value string
	prev  *node
	next  *node
}

// LRUCache is a thread-safe LRU cache mapping short codes to destination URLs.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*node
	head     *node // most recently used
	tail     *node // least recently used
}

// NewLRUCache creates an LRU cache with given capacity.
func NewLRUCache(capacity int) *LRUCache {
	if capacity <= 0 {
		capacity = 1000 // default
	}

	c := &LRUCache{
		capacity: capacity,
		items:    make(map[string]*node, capacity),
	}

	// dummy head and tail
	c.head = &node{}
	c.tail = &node{}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves a value and marks it as recently used.
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, exists := c.items[key]
	if !exists {
		return "", false
	}

	c.moveToFront(n)
	return n.value, true
}

// Put adds or updates an entry, evicting the least recently used entry if full.
func (c *LRUCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, exists := c.items[key]; exists {
		n.value = value
		c.moveToFront(n)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictTail()
	}

	n := &node{key: key, value: value}
	c.addToFront(n)
	c.items[key] = n
}

// Delete removes an entry. It reports whether the key was present.
func (c *LRUCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, exists := c.items[key]
	if !exists {
		return false
	}

	c.removeNode(n)
	delete(c.items, key)
	return true
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRUCache) moveToFront(n *node) {
	c.removeNode(n)
	c.addToFront(n)
}

func (c *LRUCache) removeNode(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (c *LRUCache) addToFront(n *node) {
	headNext := c.head.next

	n.next = headNext
	n.prev = c.head

	c.head.next = n
	headNext.prev = n
}

func (c *LRUCache) evictTail() {
	lru := c.tail.prev
	if lru == c.head {
		return
	}
	c.removeNode(lru)
	delete(c.items, lru.key)
}
