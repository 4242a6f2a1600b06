package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLRUCache_Basic(t *testing.T) {
	c := NewLRUCache(2)

	c.Put("abc123", "https://a.example.com")
	c.Put("def456", "https://b.example.com")

	if val, ok := c.Get("abc123"); !ok || val != "https://a.example.com" {
		t.Errorf("expected hit for abc123, got %q ok=%v", val, ok)
	}

	// Cache is full; adding a third entry should evict def456 (LRU).
	c.Put("ghi789", "https://c.example.com")

	if _, ok := c.Get("def456"); ok {
		t.Error("expected def456 to be evicted")
	}
	if _, ok := c.Get("abc123"); !ok {
		t.Error("expected abc123 to survive")
	}
	if _, ok := c.Get("ghi789"); !ok {
		t.Error("expected ghi789 to exist")
	}
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := NewLRUCache(2)

	c.Put("abc123", "https://old.example.com")
	c.Put("abc123", "https://new.example.com")

	if val, ok := c.Get("abc123"); !ok || val != "https://new.example.com" {
		t.Errorf("expected updated value, got %q", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestLRUCache_Delete(t *testing.T) {
	c := NewLRUCache(2)

	c.Put("abc123", "https://a.example.com")
	if !c.Delete("abc123") {
		t.Error("expected Delete to report the key as present")
	}
	if _, ok := c.Get("abc123"); ok {
		t.Error("expected abc123 to be gone after Delete")
	}
	if c.Delete("abc123") {
		t.Error("expected second Delete to report absence")
	}
}

func TestLRUCache_Concurrency(t *testing.T) {
	c := NewLRUCache(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key_%d_%d", id, j)
				c.Put(key, "https://example.com")
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
}
