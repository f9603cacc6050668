// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/gamestats/internal/analytics"
	"github.com/tomtom215/gamestats/internal/config"
	"github.com/tomtom215/gamestats/internal/logging"
	"github.com/tomtom215/gamestats/internal/metrics"
)

// Table names used in logs and metric labels.
const (
	TableGames     = "games"
	TableItems     = "items"
	TableReviews   = "reviews"
	TableSentiment = "sentiment"
)

// LoadDataset opens DuckDB, reads every table named in paths and returns the
// frozen snapshot. The DuckDB instance does not outlive the call.
func LoadDataset(ctx context.Context, dbCfg *config.DatabaseConfig, paths config.DatasetConfig) (*analytics.Dataset, error) {
	start := time.Now()

	db, err := New(dbCfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close DuckDB after load")
		}
	}()

	tables, err := db.LoadTables(ctx, paths)
	if err != nil {
		return nil, err
	}

	ds := analytics.NewDataset(tables).WithLoadDuration(time.Since(start))
	metrics.RecordDatasetLoaded(time.Now())

	stats := ds.Stats()
	logging.Info().
		Int(TableGames, stats.Games).
		Int(TableItems, stats.LibraryItems).
		Int(TableReviews, stats.Reviews).
		Int(TableSentiment, stats.SentimentReviews).
		Float64("duration_ms", stats.LoadDurationMS).
		Msg("Dataset loaded")
	return ds, nil
}

// LoadTables reads the four tables in order and stops at the first failure.
func (db *DB) LoadTables(ctx context.Context, paths config.DatasetConfig) (analytics.Tables, error) {
	var t analytics.Tables
	var err error

	if t.Games, err = loadTable(ctx, db, TableGames, paths.GamesPath, gamesQuery, scanGame); err != nil {
		return t, err
	}
	if t.Items, err = loadTable(ctx, db, TableItems, paths.ItemsPath, itemsQuery, scanLibraryItem); err != nil {
		return t, err
	}
	if t.Reviews, err = loadTable(ctx, db, TableReviews, paths.ReviewsPath, reviewsQuery, scanReview); err != nil {
		return t, err
	}
	if t.Sentiment, err = loadTable(ctx, db, TableSentiment, paths.SentimentPath, sentimentQuery, scanSentimentReview); err != nil {
		return t, err
	}
	return t, nil
}

func loadTable[T any](ctx context.Context, db *DB, table, path, queryTemplate string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	start := time.Now()
	rows, err := readTable(ctx, db.conn, path, queryTemplate, scan)
	metrics.RecordTableLoad(table, len(rows), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s table from %s: %w", table, path, err)
	}
	logging.Debug().Str("table", table).Str("path", path).Int("rows", len(rows)).
		Dur("duration", time.Since(start)).Msg("Table loaded")
	return rows, nil
}

func readTable[T any](ctx context.Context, conn *sql.DB, path, queryTemplate string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	source, err := sourceFor(path)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, fmt.Sprintf(queryTemplate, source))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return out, nil
}

// sourceFor returns the DuckDB table function reading path, chosen by
// file extension.
func sourceFor(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("dataset file not accessible: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("dataset path %s is a directory", path)
	}

	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return "read_parquet(" + quoted + ")", nil
	case strings.HasSuffix(lower, ".csv"), strings.HasSuffix(lower, ".csv.gz"):
		return "read_csv_auto(" + quoted + ", header = true)", nil
	case strings.HasSuffix(lower, ".json"), strings.HasSuffix(lower, ".jsonl"),
		strings.HasSuffix(lower, ".ndjson"), strings.HasSuffix(lower, ".json.gz"):
		return "read_json_auto(" + quoted + ")", nil
	default:
		return "", fmt.Errorf("unsupported dataset format for %s (want .parquet, .csv or .json)", path)
	}
}
