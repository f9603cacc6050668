// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/gamestats/internal/models"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{" 10 ", "10"},
		{"10.0", "10"},
		{"10.000", "10"},
		{"10.", "10"},
		{"10.5", "10.5"},
		{"76561197970982479", "76561197970982479"},
		{"js41637", "js41637"},
		{"v1.0", "v1.0"},
		{".0", ".0"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeID(tt.in); got != tt.want {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDataset_CopiesAndNormalizes(t *testing.T) {
	tables := Tables{
		Games:     []models.Game{{ID: "5.0", Developer: "Valve"}},
		Items:     []models.LibraryItem{{UserID: " u1 ", ItemID: "5"}},
		Reviews:   []models.Review{{UserID: "u1", ItemID: "5.0"}},
		Sentiment: []models.SentimentReview{{ItemID: " 5"}},
	}

	ds := NewDataset(tables)
	tables.Games[0].Developer = "changed"

	if ds.games[0].ID != "5" || ds.games[0].Developer != "Valve" {
		t.Errorf("games[0] = %+v, want normalized copy", ds.games[0])
	}
	if ds.items[0].UserID != "u1" {
		t.Errorf("items[0].UserID = %q", ds.items[0].UserID)
	}
	if ds.reviews[0].ItemID != "5" || ds.sentiment[0].ItemID != "5" {
		t.Errorf("item ids not normalized: %q %q", ds.reviews[0].ItemID, ds.sentiment[0].ItemID)
	}
	if tables.Games[0].ID != "5.0" {
		t.Error("NewDataset modified the caller's rows")
	}
}

func TestDatasetStats(t *testing.T) {
	ds := NewDataset(fixtureTables()).WithLoadDuration(1500 * time.Microsecond)

	stats := ds.Stats()
	if stats.Games != 10 || stats.LibraryItems != 7 || stats.Reviews != 4 || stats.SentimentReviews != 12 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LoadDurationMS != 1.5 {
		t.Errorf("LoadDurationMS = %v, want 1.5", stats.LoadDurationMS)
	}
	if _, err := time.Parse(time.RFC3339, stats.LoadedAt); err != nil {
		t.Errorf("LoadedAt %q is not RFC3339: %v", stats.LoadedAt, err)
	}
}

func TestPostedYear(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Posted November 5, 2011.", "2011", true},
		{"Posted 2013-01-20", "2013", true},
		{"Posted March 2.", "", false},
		{"Posted 12345", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := PostedYear(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PostedYear(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
