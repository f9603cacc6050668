// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamestats/internal/logging"
)

// SlowRequestThreshold promotes request log lines to warn.
var SlowRequestThreshold = 500 * time.Millisecond

// RequestLogger writes one log line per request through the context logger,
// so the line carries request_id and correlation_id.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)
		elapsed := time.Since(start)

		logger := logging.Ctx(r.Context())
		var event *zerolog.Event
		switch {
		case rw.statusCode >= http.StatusInternalServerError:
			event = logger.Error()
		case elapsed > SlowRequestThreshold:
			event = logger.Warn()
		default:
			event = logger.Debug()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", RoutePattern(r)).
			Int("status", rw.statusCode).
			Dur("duration", elapsed).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	}
}
