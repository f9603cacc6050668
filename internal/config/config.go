// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package config

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the four input tables. Each path may point at a
// .parquet, .csv, .json, .jsonl or .json.gz file.
type DatasetConfig struct {
	GamesPath     string `koanf:"games_path"`
	ItemsPath     string `koanf:"items_path"`
	ReviewsPath   string `koanf:"reviews_path"`
	SentimentPath string `koanf:"sentiment_path"`
}

// DatabaseConfig tunes the DuckDB instance used to read the tables.
type DatabaseConfig struct {
	// Path is ":memory:" unless a scratch file is wanted for large inputs.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	// Threads of 0 leaves the choice to DuckDB.
	Threads int `koanf:"threads"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CacheConfig controls the per-routine result cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads and validates configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
