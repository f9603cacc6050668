// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/gamestats/internal/config"
)

// pingTimeout bounds the initial connectivity check.
const pingTimeout = 30 * time.Second

// DB wraps a DuckDB connection used to read input tables.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens a DuckDB instance configured from cfg.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	conn, err := sql.Open("duckdb", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn, cfg: cfg}, nil
}

// connectionString disables extension auto-install so that a restricted
// network cannot stall startup. parquet and json readers are built in.
func connectionString(cfg *config.DatabaseConfig) string {
	path := cfg.Path
	if path == ":memory:" {
		path = ""
	}
	s := fmt.Sprintf("%s?access_mode=read_write&autoinstall_known_extensions=false", path)
	if cfg.MaxMemory != "" {
		s += "&max_memory=" + cfg.MaxMemory
	}
	if cfg.Threads > 0 {
		s += fmt.Sprintf("&threads=%d", cfg.Threads)
	}
	return s
}

// Close releases the DuckDB instance.
func (db *DB) Close() error {
	return db.conn.Close()
}

func closeQuietly(conn *sql.DB) {
	_ = conn.Close() //nolint:errcheck // already returning a more relevant error
}
