// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/gamestats/internal/models"
)

// Dataset is the read-only snapshot every routine queries. Build it once
// with NewDataset; it is safe for concurrent use because nothing mutates it
// afterwards.
type Dataset struct {
	games     []models.Game
	items     []models.LibraryItem
	reviews   []models.Review
	sentiment []models.SentimentReview

	loadedAt     time.Time
	loadDuration time.Duration
}

// Tables holds freshly loaded rows before they become a Dataset.
type Tables struct {
	Games     []models.Game
	Items     []models.LibraryItem
	Reviews   []models.Review
	Sentiment []models.SentimentReview
}

// NewDataset copies the tables, normalizes every identifier with NormalizeID
// and freezes the result. The caller may reuse the input slices.
func NewDataset(t Tables) *Dataset {
	ds := &Dataset{
		games:     slices.Clone(t.Games),
		items:     slices.Clone(t.Items),
		reviews:   slices.Clone(t.Reviews),
		sentiment: slices.Clone(t.Sentiment),
		loadedAt:  time.Now().UTC(),
	}

	for i := range ds.games {
		ds.games[i].ID = NormalizeID(ds.games[i].ID)
	}
	for i := range ds.items {
		ds.items[i].UserID = NormalizeID(ds.items[i].UserID)
		ds.items[i].ItemID = NormalizeID(ds.items[i].ItemID)
	}
	for i := range ds.reviews {
		ds.reviews[i].UserID = NormalizeID(ds.reviews[i].UserID)
		ds.reviews[i].ItemID = NormalizeID(ds.reviews[i].ItemID)
	}
	for i := range ds.sentiment {
		ds.sentiment[i].ItemID = NormalizeID(ds.sentiment[i].ItemID)
	}
	return ds
}

// WithLoadDuration records how long building the snapshot took.
func (d *Dataset) WithLoadDuration(elapsed time.Duration) *Dataset {
	d.loadDuration = elapsed
	return d
}

// Stats reports table sizes and load timing.
func (d *Dataset) Stats() models.DatasetStats {
	return models.DatasetStats{
		Games:            len(d.games),
		LibraryItems:     len(d.items),
		Reviews:          len(d.reviews),
		SentimentReviews: len(d.sentiment),
		LoadedAt:         d.loadedAt.Format(time.RFC3339),
		LoadDurationMS:   float64(d.loadDuration.Microseconds()) / 1000,
	}
}

// NormalizeID returns the canonical text form of an identifier: surrounding
// space is trimmed and an integral decimal such as "10.0" loses its
// fractional zeros, so ids exported as floats still join with ids exported
// as text.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	dot := strings.IndexByte(id, '.')
	if dot <= 0 {
		return id
	}
	intPart, frac := id[:dot], id[dot+1:]
	if !isDigits(intPart) || strings.Trim(frac, "0") != "" {
		return id
	}
	return intPart
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// key functions shared by the routines

func gameID(g models.Game) (string, bool) {
	return g.ID, g.ID != ""
}

func libraryItemID(li models.LibraryItem) (string, bool) {
	return li.ItemID, li.ItemID != ""
}

func sentimentItemID(s models.SentimentReview) (string, bool) {
	return s.ItemID, s.ItemID != ""
}

func releaseYear(g models.Game) (int, bool) {
	if g.ReleaseYear == nil {
		return 0, false
	}
	return *g.ReleaseYear, true
}
