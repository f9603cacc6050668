// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/gamestats/internal/metrics"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](ttl time.Duration, capacity int) (*Cache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[V](ttl, capacity)
	c.now = clock.Now
	return c, clock
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache[string](time.Minute, 10)

	if _, ok := c.Get("developer", "Valve"); ok {
		t.Fatal("empty cache should miss")
	}
	c.Set("developer", "Valve", "result")

	got, ok := c.Get("developer", "Valve")
	if !ok || got != "result" {
		t.Fatalf("Get() = %q, %v; want result, true", got, ok)
	}
	if _, ok := c.Get("userdata", "Valve"); ok {
		t.Error("same param under another routine should miss")
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 2 || stats.Entries != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if rate := stats.HitRate; rate < 33.3 || rate > 33.4 {
		t.Errorf("HitRate = %v, want ~33.3", rate)
	}
}

func TestCache_Expiry(t *testing.T) {
	c, clock := newTestCache[int](time.Minute, 10)
	c.Set("genre", "Action", 1)

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("genre", "Action"); !ok {
		t.Fatal("entry should still be live")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("genre", "Action"); ok {
		t.Fatal("entry should have expired")
	}
	if c.GetStats().Entries != 0 {
		t.Errorf("expired entry not removed, Entries = %d", c.GetStats().Entries)
	}
	if c.GetStats().Expirations != 1 {
		t.Errorf("Expirations = %d, want 1", c.GetStats().Expirations)
	}
}

func TestCache_SetRefreshesTTL(t *testing.T) {
	c, clock := newTestCache[int](time.Minute, 10)
	c.Set("genre", "RPG", 1)
	clock.Advance(50 * time.Second)
	c.Set("genre", "RPG", 2)
	clock.Advance(50 * time.Second)

	got, ok := c.Get("genre", "RPG")
	if !ok || got != 2 {
		t.Errorf("Get() = %d, %v; want 2, true", got, ok)
	}
}

func TestCache_LRUEviction(t *testing.T) {
	c, _ := newTestCache[int](time.Hour, 3)
	c.Set("r", "a", 1)
	c.Set("r", "b", 2)
	c.Set("r", "c", 3)

	// touch a so b becomes least recently used
	c.Get("r", "a")
	c.Set("r", "d", 4)

	if _, ok := c.Get("r", "b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get("r", k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if c.GetStats().Entries != 3 || c.GetStats().Evictions != 1 {
		t.Errorf("Entries = %d, Evictions = %d", c.GetStats().Entries, c.GetStats().Evictions)
	}
}

func TestCache_Cleanup(t *testing.T) {
	c, clock := newTestCache[int](time.Minute, 10)
	c.Set("r", "old", 1)
	clock.Advance(30 * time.Second)
	c.Set("r", "new", 2)
	clock.Advance(45 * time.Second)

	if n := c.Cleanup(); n != 1 {
		t.Errorf("Cleanup() = %d, want 1", n)
	}
	if _, ok := c.Get("r", "new"); !ok {
		t.Error("unexpired entry removed by Cleanup")
	}
	if got := testutil.ToFloat64(metrics.CacheEntries); got != 1 {
		t.Errorf("cache entries gauge = %v, want 1", got)
	}
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache[int](time.Minute, 10)
	for i := 0; i < 5; i++ {
		c.Set("r", fmt.Sprint(i), i)
	}
	c.Clear()
	if c.GetStats().Entries != 0 {
		t.Errorf("Entries after Clear = %d", c.GetStats().Entries)
	}
	c.Set("r", "x", 1)
	if _, ok := c.Get("r", "x"); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestCache_RecordsLookupMetrics(t *testing.T) {
	c, _ := newTestCache[int](time.Minute, 10)
	routine := "test_metrics_routine"

	hits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(routine))
	misses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(routine))

	c.Get(routine, "p")
	c.Set(routine, "p", 1)
	c.Get(routine, "p")

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(routine)) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(routine)) - misses; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}

func TestKey(t *testing.T) {
	if Key("a", "bc") == Key("ab", "c") {
		t.Error("keys for different routine/param pairs collide")
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New[int](0, 0)
	if c.capacity != DefaultCapacity || c.ttl != 5*time.Minute {
		t.Errorf("capacity = %d, ttl = %v", c.capacity, c.ttl)
	}
}

func TestCache_Serve(t *testing.T) {
	c := New[int](time.Minute, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if c.String() == "" {
		t.Error("String() should name the service")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int](time.Minute, 50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprint(i % 75)
				c.Set("r", key, g)
				c.Get("r", key)
			}
		}(g)
	}
	wg.Wait()
	if c.GetStats().Entries > 50 {
		t.Errorf("Entries = %d exceeds capacity", c.GetStats().Entries)
	}
}

func TestCache_HitRateBeforeLookups(t *testing.T) {
	c, _ := newTestCache[int](time.Minute, 10)
	c.Set("r", "k", 1)
	if rate := c.GetStats().HitRate; rate != 0 {
		t.Errorf("HitRate = %v, want 0 with no lookups", rate)
	}
}

type payload struct {
	body []byte
	etag string
}

// Readers hitting a key while writers replace it must see whole values.
// Run with -race.
func TestCache_ConcurrentGetSetSameKey(t *testing.T) {
	c := New[payload](time.Minute, 10)
	c.Set("developer", "Valve", payload{body: []byte("v0"), etag: `"0"`})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				tag := fmt.Sprintf(`"%d-%d"`, g, i)
				c.Set("developer", "Valve", payload{body: []byte(tag), etag: tag})
			}
		}(g)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v, ok := c.Get("developer", "Valve")
				if !ok {
					t.Error("entry vanished")
					return
				}
				if v.etag != `"0"` && string(v.body) != v.etag {
					t.Errorf("torn value: body %q etag %q", v.body, v.etag)
					return
				}
			}
		}()
	}
	wg.Wait()
}
