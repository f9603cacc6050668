// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/gamestats/internal/analytics"
	"github.com/tomtom215/gamestats/internal/api"
	"github.com/tomtom215/gamestats/internal/config"
	"github.com/tomtom215/gamestats/internal/database"
	"github.com/tomtom215/gamestats/internal/logging"
	"github.com/tomtom215/gamestats/internal/metrics"
	"github.com/tomtom215/gamestats/internal/supervisor"
	"github.com/tomtom215/gamestats/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Replaced in tests.
var (
	loadConfig  = config.Load
	loadDataset = func(ctx context.Context, cfg *config.Config) (*analytics.Dataset, error) {
		return database.LoadDataset(ctx, &cfg.Database, cfg.Dataset)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Fatal().Err(err).Msg("gamestats exited with error")
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	setup := func(cmd *cobra.Command, _ []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logging.Init(logging.Config{
			Level:  loaded.Logging.Level,
			Format: loaded.Logging.Format,
			Caller: loaded.Logging.Caller,
			Output: cmd.ErrOrStderr(),
		})
		cfg = loaded
		return nil
	}

	serve := func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context(), cfg)
	}

	root := &cobra.Command{
		Use:   "gamestats",
		Short: "GameStats - game catalog and review analytics API",
		Long: `GameStats loads a game catalog, user libraries and user reviews at startup
and serves five read-only analytics queries over HTTP.

Configuration comes from defaults, an optional YAML file (CONFIG_PATH) and
environment variables. Running without a subcommand starts the server.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              serve,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})

	var compact bool
	queryCmd := &cobra.Command{
		Use:   "query ROUTINE PARAM",
		Short: "Run one analytics routine and print its JSON result",
		Long: `Run one analytics routine against the configured dataset and print the
result exactly as the HTTP endpoint would return it.

Routines: developer, userdata, UserForGenre, best_developer_year,
developer_reviews_analysis.

Example:
  gamestats query developer Valve
  gamestats query best_developer_year 2012`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}
			return runQuery(cmd, ds, args[0], args[1], compact)
		},
	}
	queryCmd.Flags().BoolVar(&compact, "compact", false, "Print the result on a single line")
	root.AddCommand(queryCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Overrides the root hook so version works without a valid config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GameStats %s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	return root
}

func runQuery(cmd *cobra.Command, ds *analytics.Dataset, routine, param string, compact bool) error {
	result, err := ds.Run(routine, param)
	if err != nil {
		return err
	}

	var body []byte
	if compact {
		body, err = json.Marshal(result)
	} else {
		body, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode %s result: %w", routine, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return err
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting GameStats")
	metrics.SetAppInfo(version)

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	handler := api.NewHandler(ds, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	if c := handler.Cache(); c != nil {
		tree.AddDataService(c)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Server listening")

	err = tree.Serve(ctx)
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info().Msg("Shutdown complete")
	return nil
}
