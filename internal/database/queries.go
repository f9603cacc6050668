// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package database

import (
	"database/sql"

	"github.com/tomtom215/gamestats/internal/models"
)

// Each template takes the table function from sourceFor as its only %s.
// Identifiers are cast to text here so that numeric and string ids compare
// equal later; NormalizeID strips any ".0" left by float columns.

// gamesQuery resolves release_date to a year through ISO dates and
// timestamps first, then the "Jan 4, 2018" and bare "2018" forms seen in
// scraped catalogs.
const gamesQuery = `
SELECT
	CAST(id AS VARCHAR) AS id,
	COALESCE(CAST(developer AS VARCHAR), '') AS developer,
	COALESCE(CAST(genres AS VARCHAR), '') AS genres,
	TRY_CAST(price AS DOUBLE) AS price,
	COALESCE(
		year(TRY_CAST(CAST(release_date AS VARCHAR) AS DATE)),
		year(TRY_CAST(CAST(release_date AS VARCHAR) AS TIMESTAMP)),
		year(TRY_STRPTIME(CAST(release_date AS VARCHAR), '%%b %%d, %%Y')),
		year(TRY_STRPTIME(CAST(release_date AS VARCHAR), '%%Y'))
	) AS release_year
FROM %s
WHERE id IS NOT NULL`

const itemsQuery = `
SELECT
	CAST(user_id AS VARCHAR) AS user_id,
	CAST(item_id AS VARCHAR) AS item_id,
	CAST(COALESCE(TRY_CAST(items_count AS DOUBLE), 0) AS BIGINT) AS items_count,
	CAST(COALESCE(TRY_CAST(playtime_forever AS DOUBLE), 0) AS BIGINT) AS playtime_forever
FROM %s
WHERE user_id IS NOT NULL`

const reviewsQuery = `
SELECT
	CAST(user_id AS VARCHAR) AS user_id,
	COALESCE(CAST(item_id AS VARCHAR), '') AS item_id,
	COALESCE(TRY_CAST(recommend AS BOOLEAN), false) AS recommend
FROM %s
WHERE user_id IS NOT NULL`

const sentimentQuery = `
SELECT
	COALESCE(CAST(item_id AS VARCHAR), '') AS item_id,
	COALESCE(CAST(posted AS VARCHAR), '') AS posted,
	COALESCE(TRY_CAST(recommend AS BOOLEAN), false) AS recommend,
	TRY_CAST(sentiment_analysis AS BIGINT) AS sentiment_analysis
FROM %s`

func scanGame(rows *sql.Rows) (models.Game, error) {
	var (
		g     models.Game
		price sql.NullFloat64
		year  sql.NullInt64
	)
	if err := rows.Scan(&g.ID, &g.Developer, &g.Genres, &price, &year); err != nil {
		return g, err
	}
	if price.Valid {
		p := price.Float64
		g.Price = &p
	}
	if year.Valid {
		y := int(year.Int64)
		g.ReleaseYear = &y
	}
	return g, nil
}

func scanLibraryItem(rows *sql.Rows) (models.LibraryItem, error) {
	var (
		li     models.LibraryItem
		itemID sql.NullString
	)
	err := rows.Scan(&li.UserID, &itemID, &li.ItemsCount, &li.PlaytimeForever)
	li.ItemID = itemID.String
	return li, err
}

func scanReview(rows *sql.Rows) (models.Review, error) {
	var r models.Review
	err := rows.Scan(&r.UserID, &r.ItemID, &r.Recommend)
	return r, err
}

func scanSentimentReview(rows *sql.Rows) (models.SentimentReview, error) {
	var (
		s         models.SentimentReview
		sentiment sql.NullInt64
	)
	if err := rows.Scan(&s.ItemID, &s.Posted, &s.Recommend, &sentiment); err != nil {
		return s, err
	}
	s.Sentiment = models.SentimentUnknown
	if sentiment.Valid {
		s.Sentiment = models.ParseSentiment(sentiment.Int64)
	}
	return s, nil
}
