// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package models

// Sentiment is the categorical score attached to a review.
type Sentiment int8

const (
	// SentimentUnknown marks a row whose category was missing or not 0..2.
	SentimentUnknown  Sentiment = -1
	SentimentNegative Sentiment = 0
	SentimentNeutral  Sentiment = 1
	SentimentPositive Sentiment = 2
)

// Known reports whether s is one of the three defined categories.
func (s Sentiment) Known() bool {
	return s >= SentimentNegative && s <= SentimentPositive
}

// ParseSentiment maps a raw integer score to a Sentiment.
func ParseSentiment(v int64) Sentiment {
	if v < int64(SentimentNegative) || v > int64(SentimentPositive) {
		return SentimentUnknown
	}
	return Sentiment(v)
}

// Game is a catalog row. Price is nil when the source value was not numeric
// (for example "Free to Play" text); ReleaseYear is nil when release_date
// could not be parsed.
type Game struct {
	ID          string
	Developer   string
	Genres      string
	Price       *float64
	ReleaseYear *int
}

// IsFree reports whether the game has a numeric price of exactly zero.
func (g *Game) IsFree() bool {
	return g.Price != nil && *g.Price == 0
}

// LibraryItem associates a user with an owned item. ItemsCount repeats the
// user's total library size on every row.
type LibraryItem struct {
	UserID          string
	ItemID          string
	ItemsCount      int64
	PlaytimeForever int64
}

// Review is a single user review.
type Review struct {
	UserID    string
	ItemID    string
	Recommend bool
}

// SentimentReview is a review with a derived sentiment category. Posted is
// the free-text date as scraped, e.g. "Posted November 5, 2011.".
type SentimentReview struct {
	ItemID    string
	Posted    string
	Recommend bool
	Sentiment Sentiment
}

// DatasetStats summarizes the loaded snapshot.
type DatasetStats struct {
	Games            int     `json:"games"`
	LibraryItems     int     `json:"library_items"`
	Reviews          int     `json:"reviews"`
	SentimentReviews int     `json:"sentiment_reviews"`
	LoadedAt         string  `json:"loaded_at"`
	LoadDurationMS   float64 `json:"load_duration_ms"`
}
