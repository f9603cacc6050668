// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamestats/internal/analytics"
	"github.com/tomtom215/gamestats/internal/metrics"
)

// routineFunc runs one routine for an already validated parameter.
type routineFunc func() (interface{}, error)

// execute serves a routine result, consulting the result cache first.
// Only successful results are cached; errors are recomputed each time.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, routine, param string, run routineFunc) {
	if h.data == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Dataset not loaded", nil, ErrDatasetNotLoaded)
		return
	}

	if h.cache != nil {
		if hit, ok := h.cache.Get(routine, param); ok {
			respondRaw(w, r, hit.body, hit.etag, cacheHit)
			return
		}
	}

	start := time.Now()
	result, err := run()
	metrics.RecordQuery(routine, time.Since(start), err, errorKind)
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to encode result", nil, err)
		return
	}
	entry := cachedResult{body: body, etag: generateETag(body)}

	status := ""
	if h.cache != nil {
		h.cache.Set(routine, param, entry)
		status = cacheMiss
	}
	respondRaw(w, r, entry.body, entry.etag, status)
}

func (h *Handler) respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)
	message := analytics.ClientMessage(err)
	if status == http.StatusInternalServerError {
		message = "Failed to execute query"
	}
	respondError(w, r, status, code, message, nil, err)
}
