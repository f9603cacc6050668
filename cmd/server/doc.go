// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package main is the entry point for the GameStats server.

GameStats loads four read-only tables (game catalog, user libraries, user
reviews and sentiment-scored reviews) into memory at startup and answers
five fixed analytics queries over HTTP.

# Application Architecture

The server runs under a Suture v4 supervision tree:

	RootSupervisor ("gamestats")
	├── DataSupervisor ("data-layer")
	│   └── result-cache-janitor (when the cache is enabled)
	└── APISupervisor ("api-layer")
	    └── http-server

Startup order:

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog with JSON or console output
 3. Dataset: DuckDB reads every table file once, then the connection is closed
 4. HTTP Server: Chi router with request ID, logging, CORS, rate limiting, metrics and gzip
 5. Supervisor Tree: runs until SIGINT or SIGTERM

# Commands

	gamestats [serve]             start the HTTP server (default)
	gamestats query ROUTINE PARAM run one routine and print the JSON result
	gamestats version             print build information

The query command uses the same configuration and loader as the server, so
it is a quick way to check a dataset without starting a listener:

	gamestats query developer Valve
	gamestats query best_developer_year 2012

# Endpoints

	GET /developer/{desarrollador}
	GET /userdata/{user_id}
	GET /UserForGenre/{genero}
	GET /best_developer_year/{año}
	GET /developer_reviews_analysis/{desarrolladora}
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /api/v1/dataset/stats
	GET /metrics

The five query routes are also mounted under /api/v1.
*/
package main
