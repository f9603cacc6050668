// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package middleware provides HTTP middleware for the query API.

Each middleware has the signature func(http.HandlerFunc) http.HandlerFunc and
is adapted to chi's func(http.Handler) http.Handler in the api package.

Key Components:

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - RequestLogger: one structured log line per request
  - PrometheusMetrics: request counts and latency labeled by chi route pattern
  - Compression: gzip via klauspost/compress for clients that accept it

Order matters. RequestID runs first so every later log line carries the id,
and PrometheusMetrics wraps Compression so it observes the status before the
body is encoded:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Route labels come from chi's RoutePattern, so /userdata/{user_id} is one
series no matter how many users are queried. Requests that match no route are
labeled "unmatched".
*/
package middleware
