package dofusdb

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheStats reports the activity of one lookup cache.
// Evictions counts entries dropped for size, age or a clear.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// CatalogCacheStats groups the stats of the client's caches
type CatalogCacheStats struct {
	Items       CacheStats `json:"items"`
	Ingredients CacheStats `json:"ingredients"`
}

// lookupCache is an in-memory LRU keyed by ankama id with time-based expiration
type lookupCache[V any] struct {
	lru       *expirable.LRU[int, V]
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// newLookupCache creates a cache holding at most size entries for ttl.
// A non-positive size disables caching.
func newLookupCache[V any](size int, ttl time.Duration) *lookupCache[V] {
	c := &lookupCache[V]{}
	if size > 0 {
		c.lru = expirable.NewLRU[int, V](size, func(int, V) {
			c.evictions.Add(1)
		}, ttl)
	}
	return c
}

func (c *lookupCache[V]) Get(id int) (V, bool) {
	if c.lru != nil {
		if v, ok := c.lru.Get(id); ok {
			c.hits.Add(1)
			return v, true
		}
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

func (c *lookupCache[V]) Set(id int, value V) {
	if c.lru != nil {
		c.lru.Add(id, value)
	}
}

func (c *lookupCache[V]) Stats() CacheStats {
	stats := CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	if c.lru != nil {
		stats.Size = c.lru.Len()
	}
	return stats
}

// Clear removes all entries; counters are kept
func (c *lookupCache[V]) Clear() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// CacheStats returns the item and ingredient cache statistics
func (c *Client) CacheStats() CatalogCacheStats {
	return CatalogCacheStats{
		Items:       c.items.Stats(),
		Ingredients: c.ingredients.Stats(),
	}
}

// ClearCache drops every cached item and ingredient so the next lookups
// go back to the item database
func (c *Client) ClearCache() {
	c.items.Clear()
	c.ingredients.Clear()
}
