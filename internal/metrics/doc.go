// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

// Package metrics registers the Prometheus collectors GameStats exposes on
// /metrics.
//
// Collectors are package-level and registered with the default registry via
// promauto. Callers use the Record* helpers rather than touching the vectors
// directly so label sets stay consistent.
//
//   - gamestats_table_load_duration_seconds / gamestats_table_rows: dataset load
//   - gamestats_query_duration_seconds / gamestats_query_errors_total: routines
//   - gamestats_cache_*: result cache effectiveness
//   - gamestats_api_*: HTTP traffic, recorded by middleware.PrometheusMetrics
package metrics
