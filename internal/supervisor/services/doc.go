// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package services adapts server components to suture.Service.

HTTPServerService wraps anything with ListenAndServe and Shutdown, normally
*http.Server, and turns context cancellation into a graceful shutdown bounded
by the configured timeout.
*/
package services
