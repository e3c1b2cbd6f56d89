package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"

	"docstyle/internal/domain"
)

// DocumentCache keeps recently tokenized documents keyed by path and
// source version (modification time or revision). Invalidate drops
// everything; callers use it when the stop list changes.
type DocumentCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	gen     uint64
	hits    int
	misses  int
}

type cacheEntry struct {
	doc domain.Document
	gen uint64
}

func NewDocumentCache(maxSize int) *DocumentCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &DocumentCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func cacheKey(path string, modTime int64) string {
	data := []byte(path)
	data = append(data, 0)
	data = strconv.AppendInt(data, modTime, 10)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func (c *DocumentCache) Get(path string, modTime int64) (domain.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(path, modTime)
	entry, exists := c.entries[key]
	if !exists {
		c.misses++
		return domain.Document{}, false
	}

	if entry.gen != c.gen {
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses++
		return domain.Document{}, false
	}

	c.moveToEnd(key)
	c.hits++
	return entry.doc, true
}

func (c *DocumentCache) Put(path string, modTime int64, doc domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(path, modTime)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{doc: doc, gen: c.gen}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{doc: doc, gen: c.gen}
	c.order = append(c.order, key)
}

func (c *DocumentCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

func (c *DocumentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since creation.
func (c *DocumentCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *DocumentCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *DocumentCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *DocumentCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
