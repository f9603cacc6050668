// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"time"

	"github.com/tomtom215/gamestats/internal/cache"
	"github.com/tomtom215/gamestats/internal/config"
	"github.com/tomtom215/gamestats/internal/models"
)

// QueryService answers the five routines. *analytics.Dataset implements it.
type QueryService interface {
	DeveloperSummary(developer string) []models.DeveloperYearSummary
	UserProfile(userID string) models.UserProfile
	TopUserForGenre(genre string) models.GenreTopUser
	BestDevelopersByYear(year int) (models.DeveloperRanking, error)
	DeveloperReviews(developer string) (models.DeveloperSentiment, error)
	Stats() models.DatasetStats
}

// cachedResult is an encoded routine result with its entity tag.
type cachedResult struct {
	body []byte
	etag string
}

// Handler serves the query and operational endpoints.
type Handler struct {
	data      QueryService
	config    *config.Config
	cache     *cache.Cache[cachedResult]
	version   string
	startTime time.Time
}

// NewHandler builds a Handler. data may be nil until the dataset is loaded;
// query endpoints answer 503 and readiness fails in the meantime.
func NewHandler(data QueryService, cfg *config.Config, version string) *Handler {
	h := &Handler{
		data:      data,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
	if cfg != nil && cfg.Cache.Enabled {
		h.cache = cache.New[cachedResult](cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}
	return h
}

// Cache returns the result cache, or nil when caching is disabled. The
// supervisor runs its expiry sweep.
func (h *Handler) Cache() *cache.Cache[cachedResult] {
	return h.cache
}

