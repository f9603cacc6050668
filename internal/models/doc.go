// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package models defines the data structures shared across GameStats.

Dataset rows:
  - Game: one catalog entry (games table)
  - LibraryItem: one owned item in a user's library (items table)
  - Review: one user review with its recommend flag (reviews table)
  - SentimentReview: a review enriched with a sentiment category (sentiment table)

Routine results carry the JSON shapes that API clients depend on, including
the Spanish field names:
  - DeveloperYearSummary: per-year catalog summary for a developer
  - UserProfile: spend, recommendation rate and library size of a user
  - GenreTopUser: top player of a genre and hours played per release year
  - DeveloperRanking: up to three developers keyed "Puesto 1".."Puesto 3"
  - DeveloperSentiment: negative and positive review counts for a developer

APIResponse and APIError make up the envelope for errors and operational
endpoints (health, dataset stats).

Identifiers (game id, item id, user id) are strings everywhere. Loaders
normalize numeric ids to their decimal text form before rows reach this
package.
*/
package models
