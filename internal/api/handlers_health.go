// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gamestats/internal/cache"
	"github.com/tomtom215/gamestats/internal/models"
)

// DatasetStatsResponse is returned by GET /api/v1/dataset/stats.
type DatasetStatsResponse struct {
	Dataset models.DatasetStats `json:"dataset"`
	Cache   *cache.Stats        `json:"cache,omitempty"`
}

// HealthLive reports that the process is up. It never touches the dataset.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:        "alive",
			Version:       h.version,
			DatasetLoaded: h.data != nil,
			Uptime:        time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady answers 200 once the dataset is loaded and 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.data != nil

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	respondJSON(w, r, code, &models.APIResponse{
		Status: status,
		Data: models.HealthStatus{
			Status:        status,
			Version:       h.version,
			DatasetLoaded: ready,
			Uptime:        time.Since(h.startTime).Seconds(),
		},
	})
}

// DatasetStats reports table sizes, load time and cache counters.
func (h *Handler) DatasetStats(w http.ResponseWriter, r *http.Request) {
	if h.data == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Dataset not loaded", nil, nil)
		return
	}

	resp := DatasetStatsResponse{Dataset: h.data.Stats()}
	if h.cache != nil {
		s := h.cache.GetStats()
		resp.Cache = &s
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
	})
}

// NotFound answers unmatched routes with the error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Not Found", nil, nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method Not Allowed", nil, nil)
}
