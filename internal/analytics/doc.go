// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

// Package analytics answers the five catalog and review queries over an
// immutable, process-resident Dataset.
//
// Every routine reads the Dataset and builds its own derived rows; nothing
// is written back, so a single Dataset can serve any number of concurrent
// requests without locking. Joins, grouping and aggregation go through the
// small generic helpers in relational.go, whose behavior on empty input is
// fixed: empty joins yield no rows, grouping yields no groups, sums are 0 and
// Max reports ok=false.
//
// Routines:
//   - DeveloperSummary: items and free share per release year
//   - UserProfile: spend, recommendation rate and library size
//   - TopUserForGenre: top player of a genre plus hours per release year
//   - BestDevelopersByYear: up to three developers ranked by top-tier recommendations
//   - DeveloperReviews: negative and positive review counts
//
// Invalid input is reported with a *QueryError wrapping ErrInvalidArgument or
// ErrNotFound. Empty results are never errors.
package analytics
