// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamestats/internal/analytics"
	"github.com/tomtom215/gamestats/internal/config"
	"github.com/tomtom215/gamestats/internal/models"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// testDataset mirrors the worked examples: a small Valve and Ubisoft catalog
// with a handful of players and reviews.
func testDataset() *analytics.Dataset {
	return analytics.NewDataset(analytics.Tables{
		Games: []models.Game{
			{ID: "10", Developer: "Valve", Genres: "Action", Price: fp(0), ReleaseYear: ip(2015)},
			{ID: "11", Developer: "Valve", Genres: "Action", Price: fp(9.99), ReleaseYear: ip(2016)},
			{ID: "20", Developer: "Ubisoft Montreal", Genres: "Action", Price: fp(4.99), ReleaseYear: ip(2012)},
			{ID: "30", Developer: "Quiet Studio", Genres: "Puzzle", Price: fp(1), ReleaseYear: ip(2014)},
		},
		Items: []models.LibraryItem{
			{UserID: "alice", ItemID: "10", ItemsCount: 2, PlaytimeForever: 100},
			{UserID: "alice", ItemID: "11", ItemsCount: 2, PlaytimeForever: 20},
			{UserID: "bob", ItemID: "20", ItemsCount: 1, PlaytimeForever: 150},
		},
		Reviews: []models.Review{
			{UserID: "alice", ItemID: "10", Recommend: true},
			{UserID: "alice", ItemID: "11", Recommend: false},
		},
		Sentiment: []models.SentimentReview{
			{ItemID: "10", Posted: "Posted November 5, 2011.", Recommend: true, Sentiment: models.SentimentPositive},
			{ItemID: "20", Posted: "Posted May 1, 2011.", Recommend: true, Sentiment: models.SentimentPositive},
			{ItemID: "20", Posted: "Posted May 2, 2011.", Recommend: true, Sentiment: models.SentimentPositive},
			{ItemID: "11", Posted: "Posted July 1, 2012.", Recommend: false, Sentiment: models.SentimentNegative},
			{ItemID: "30", Posted: "Posted July 1, 2012.", Recommend: true, Sentiment: models.SentimentNeutral},
		},
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 100},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

// setupTestRouter returns the full chi stack over the test dataset.
func setupTestRouter(t *testing.T, cfg *config.Config) (*Handler, http.Handler) {
	t.Helper()
	var data QueryService = testDataset()
	h := NewHandler(data, cfg, "test")
	mw := NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security))
	return h, NewRouter(h, mw).SetupChi()
}

func doRequest(t *testing.T, handler http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, body.String())
	}
	return resp
}
