// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/gamestats/internal/analytics"
)

// Error codes used in the error envelope.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_ERROR"
	ErrCodeInvalidArgument    = "INVALID_ARGUMENT"
)

// ErrDatasetNotLoaded is returned while the handler has no QueryService.
var ErrDatasetNotLoaded = errors.New("dataset not loaded")

// classifyError maps a routine error to an HTTP status and error code.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, analytics.ErrInvalidArgument):
		return http.StatusBadRequest, ErrCodeInvalidArgument
	case errors.Is(err, analytics.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, ErrDatasetNotLoaded):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// errorKind labels routine errors for gamestats_query_errors_total.
func errorKind(err error) string {
	switch {
	case errors.Is(err, analytics.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, analytics.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
