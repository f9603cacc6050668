// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/gamestats/internal/logging"
)

// HTTPServer is the subset of *http.Server the service drives. Tests
// substitute a fake.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService serves the query API under the api-layer supervisor.
// Each call to Serve is one run of the listener; suture calls Serve again
// after a failure.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
	starts          atomic.Int64
}

func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Starts reports how many times Serve has been entered.
func (h *HTTPServerService) Starts() int64 {
	return h.starts.Load()
}

// addr is best effort; a fake server has none.
func (h *HTTPServerService) addr() string {
	if srv, ok := h.server.(*http.Server); ok {
		return srv.Addr
	}
	return ""
}

// Serve runs the listener until it fails or ctx is canceled. A listener
// error is returned so the supervisor restarts the service with backoff.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	attempt := h.starts.Add(1)
	event := logging.Info()
	if attempt > 1 {
		event = logging.Warn()
	}
	event.Str("addr", h.addr()).Int64("attempt", attempt).Msg("Starting query API listener")

	listenErr := make(chan error, 1)
	go func() {
		defer close(listenErr)
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err, failed := <-listenErr:
		if !failed {
			// Closed by someone else; nothing to report.
			return nil
		}
		return fmt.Errorf("query API listener on %q: %w", h.addr(), err)

	case <-ctx.Done():
	}

	logging.Info().Dur("timeout", h.shutdownTimeout).Msg("Draining query API connections")
	drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("drain query API connections: %w", err)
	}
	<-listenErr
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return h.name
}
