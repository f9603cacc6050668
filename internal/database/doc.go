// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

// Package database reads the four GameStats input tables through DuckDB.
//
// DuckDB is used only at startup: it understands parquet, CSV and JSON
// (optionally compressed) directly, and its TRY_CAST family coerces messy
// columns so that unparseable prices and dates arrive as NULL instead of
// failing the load. Once LoadDataset returns, the connection is closed and
// every query is served from the in-memory analytics.Dataset.
//
//	ds, err := database.LoadDataset(ctx, &cfg.Database, cfg.Dataset)
package database
