// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package api serves the five catalog and review queries over HTTP.

Routes (each query is also mounted under /api/v1):

	GET /developer/{desarrollador}
	GET /userdata/{user_id}
	GET /UserForGenre/{genero}
	GET /best_developer_year/{año}
	GET /developer_reviews_analysis/{desarrolladora}
	GET /api/v1/dataset/stats
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

Query responses are the bare routine result so existing clients keep
working. Every other response, and every error, uses models.APIResponse:

	{"status":"error","error":{"code":"NOT_FOUND","message":"..."},"metadata":{...}}

Routine errors map to status codes by sentinel: analytics.ErrInvalidArgument
is 400, analytics.ErrNotFound is 404, anything else is 500 with a generic
message.

Successful results are encoded once, stored in the result cache with a
strong ETag and replayed on later hits. The X-Cache header reports HIT or
MISS and If-None-Match yields 304.
*/
package api
