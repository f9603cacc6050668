// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/gamestats/internal/logging"
	"github.com/tomtom215/gamestats/internal/metrics"
)

// DefaultCapacity bounds the cache when New is given a non-positive capacity.
const DefaultCapacity = 10000

// entry is a node in the recency list. head.next is the most recently used.
type entry[V any] struct {
	key       string
	routine   string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

// Cache is a thread-safe result cache keyed by routine and parameter. Entries
// expire after a fixed TTL and the least recently used entry is evicted once
// capacity is reached.
//
// The dataset never changes after startup, so the TTL only bounds memory held
// by rarely repeated parameters.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*entry[V]
	head     *entry[V]
	tail     *entry[V]
	stats    Stats
	now      func() time.Time
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	Expirations int64     `json:"expirations"`
	Entries     int       `json:"entries"`
	LastCleanup time.Time `json:"last_cleanup"`
	HitRate     float64   `json:"hit_rate"` // percent of lookups; 0 before the first
}

// New creates a cache holding at most capacity entries for ttl each.
func New[V any](ttl time.Duration, capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V]),
		head:     &entry[V]{},
		tail:     &entry[V]{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	c.stats.LastCleanup = c.now()
	return c
}

// Key joins routine and param. The NUL separator cannot appear in a URL
// path segment, so distinct pairs never collide.
func Key(routine, param string) string {
	return routine + "\x00" + param
}

// Get returns the cached result for routine and param. Expired entries are
// removed and reported as misses.
func (c *Cache[V]) Get(routine, param string) (V, bool) {
	var value V
	key := Key(routine, param)

	c.mu.Lock()
	e, ok := c.items[key]
	if ok && c.now().After(e.expiresAt) {
		c.unlink(e)
		c.stats.Expirations++
		ok = false
	}
	if ok {
		// Set overwrites value in place, so copy it before unlocking.
		value = e.value
		c.moveToFront(e)
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	size := len(c.items)
	c.mu.Unlock()

	metrics.RecordCacheLookup(routine, ok)
	metrics.SetCacheEntries(size)
	return value, ok
}

// Set stores value for routine and param, replacing any previous entry.
func (c *Cache[V]) Set(routine, param string, value V) {
	key := Key(routine, param)

	c.mu.Lock()
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = c.now().Add(c.ttl)
		c.moveToFront(e)
	} else {
		if len(c.items) >= c.capacity {
			c.evictOldest()
		}
		e := &entry[V]{key: key, routine: routine, value: value, expiresAt: c.now().Add(c.ttl)}
		c.items[key] = e
		c.pushFront(e)
	}
	size := len(c.items)
	c.mu.Unlock()

	metrics.SetCacheEntries(size)
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.stats.Evictions += int64(len(c.items))
	c.items = make(map[string]*entry[V])
	c.head.next = c.tail
	c.tail.prev = c.head
	c.mu.Unlock()

	metrics.SetCacheEntries(0)
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = len(c.items)
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// Cleanup removes expired entries and returns how many were dropped.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	now := c.now()
	removed := 0
	for _, e := range c.items {
		if now.After(e.expiresAt) {
			c.unlink(e)
			removed++
		}
	}
	c.stats.Expirations += int64(removed)
	c.stats.LastCleanup = now
	size := len(c.items)
	c.mu.Unlock()

	metrics.SetCacheEntries(size)
	return removed
}

// Serve runs the expiry sweep until ctx is canceled. It satisfies
// suture.Service so the sweep lives under the supervisor tree.
func (c *Cache[V]) Serve(ctx context.Context) error {
	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := c.Cleanup(); n > 0 {
				logging.Debug().Int("expired", n).Msg("Result cache sweep")
			}
		}
	}
}

// String names the service in supervisor logs.
func (c *Cache[V]) String() string {
	return "result-cache-janitor"
}

func (c *Cache[V]) pushFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache[V]) moveToFront(e *entry[V]) {
	if c.head.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	c.pushFront(e)
}

// unlink removes e from both the list and the map. Caller holds mu.
func (c *Cache[V]) unlink(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	delete(c.items, e.key)
}

func (c *Cache[V]) evictOldest() {
	if oldest := c.tail.prev; oldest != c.head {
		c.unlink(oldest)
		c.stats.Evictions++
	}
}
