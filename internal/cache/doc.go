// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package cache holds computed query results so repeated requests for the same
routine and parameter skip the scan over the dataset.

Cache is generic over the stored value. Entries carry a fixed TTL and the
cache is bounded by capacity with least-recently-used eviction:

	results := cache.New[[]byte](10*time.Minute, 10000)
	if body, ok := results.Get("userdata", "alice"); ok {
	    // serve body
	}
	results.Set("userdata", "alice", body)

Lookups feed the gamestats_cache_hits_total and gamestats_cache_misses_total
counters. Serve runs a periodic sweep of expired entries and is registered
with the supervisor tree.
*/
package cache
