// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

// Package logging wraps a single zerolog logger for the whole GameStats process.
//
// The logger is global so that packages without a handle to configuration
// (dataset loading, routines, middleware) still log with the same format and
// level. Call Init once from main; before that a JSON logger at info level
// writing to stderr is in place.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("games", n).Msg("Dataset loaded")
//	logging.Ctx(r.Context()).Warn().Msg("Unknown developer")
//
// Ctx attaches the request and correlation ids that the HTTP middleware stores
// in the request context. NewSlogLogger bridges to log/slog for the suture
// supervisor event hook.
package logging
