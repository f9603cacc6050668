// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package supervisor runs the long-lived parts of the server under suture v4.

The tree has two layers so a failing cache sweep cannot take the listener
down with it:

	RootSupervisor ("gamestats")
	├── DataSupervisor ("data-layer")
	│   └── result cache expiry sweep (when the cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (restarts, backoff, timeouts) are logged through sutureslog
into the zerolog-backed slog.Logger from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(handler.Cache())
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx) // returns when ctx is canceled

The dataset itself is loaded before the tree starts and never changes, so it
has no service of its own.
*/
package supervisor
