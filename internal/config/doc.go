// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

// Package config loads GameStats configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//
// The file is taken from CONFIG_PATH when set, else the first of
// DefaultConfigPaths that exists. Only the environment variables listed in
// envMappings are read; anything else in the environment is ignored.
package config
