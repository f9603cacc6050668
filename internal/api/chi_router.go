// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/gamestats/internal/middleware"
)

// Router wires handlers and middleware onto a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// chiMiddleware adapts the HandlerFunc middleware of internal/middleware.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the HTTP handler. The query routes are mounted twice, at
// the root and under /api/v1, and share handlers, cache and metrics.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(chimiddleware.GetHead)

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// one limiter so both mounts draw from the same per-client budget
	limit := router.chiMiddleware.RateLimit()

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(limit)
		r.Use(APISecurityHeaders())
		router.mountQueries(r)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limit)
		r.Use(APISecurityHeaders())
		r.Get("/dataset/stats", router.handler.DatasetStats)
		router.mountQueries(r)
	})

	return r
}

func (router *Router) mountQueries(r chi.Router) {
	r.Get("/developer/{desarrollador}", router.handler.Developer)
	r.Get("/userdata/{user_id}", router.handler.UserData)
	r.Get("/UserForGenre/{genero}", router.handler.UserForGenre)
	r.Get("/best_developer_year/{año}", router.handler.BestDeveloperYear)
	r.Get("/developer_reviews_analysis/{desarrolladora}", router.handler.DeveloperReviews)
}
