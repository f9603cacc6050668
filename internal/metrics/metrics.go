// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset loading
	TableLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamestats_table_load_duration_seconds",
			Help:    "Duration of reading one input table through DuckDB",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"table"},
	)

	TableLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamestats_table_load_errors_total",
			Help: "Total number of failed table loads",
		},
		[]string{"table"},
	)

	TableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamestats_table_rows",
			Help: "Rows held in memory per table",
		},
		[]string{"table"},
	)

	DatasetLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamestats_dataset_loaded_timestamp_seconds",
			Help: "Unix time at which the dataset snapshot was built",
		},
	)

	// Routines
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamestats_query_duration_seconds",
			Help:    "Duration of analytics routines in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"routine"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamestats_query_errors_total",
			Help: "Total number of routine calls that returned an error",
		},
		[]string{"routine", "kind"},
	)

	// Result cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamestats_cache_hits_total",
			Help: "Total number of result cache hits",
		},
		[]string{"routine"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamestats_cache_misses_total",
			Help: "Total number of result cache misses",
		},
		[]string{"routine"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamestats_cache_entries",
			Help: "Current number of cached results",
		},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamestats_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamestats_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamestats_api_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamestats_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordTableLoad records one table read. rows is ignored when err is set.
func RecordTableLoad(table string, rows int, duration time.Duration, err error) {
	TableLoadDuration.WithLabelValues(table).Observe(duration.Seconds())
	if err != nil {
		TableLoadErrors.WithLabelValues(table).Inc()
		return
	}
	TableRows.WithLabelValues(table).Set(float64(rows))
}

// RecordDatasetLoaded stamps the time the snapshot became available.
func RecordDatasetLoaded(at time.Time) {
	DatasetLoadedTimestamp.Set(float64(at.Unix()))
}

// ErrorKinder lets RecordQuery label errors without importing the package
// that defines them.
type ErrorKinder func(error) string

// RecordQuery records a routine execution. kind classifies err for the
// errors counter; a nil kind labels every error "internal".
func RecordQuery(routine string, duration time.Duration, err error, kind ErrorKinder) {
	QueryDuration.WithLabelValues(routine).Observe(duration.Seconds())
	if err == nil {
		return
	}
	label := "internal"
	if kind != nil {
		label = kind(err)
	}
	QueryErrors.WithLabelValues(routine, label).Inc()
}

// RecordCacheLookup counts a hit or miss for routine.
func RecordCacheLookup(routine string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(routine).Inc()
		return
	}
	CacheMisses.WithLabelValues(routine).Inc()
}

// SetCacheEntries reports the current cache size.
func SetCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
