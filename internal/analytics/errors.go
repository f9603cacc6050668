// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks input that is rejected outright.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup key absent from the data.
	ErrNotFound = errors.New("not found")
)

// QueryError is returned by routines for rejected input. Message is safe to
// show to API clients.
type QueryError struct {
	Op      string
	Param   string
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s(%q): %s", e.Op, e.Param, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func invalidArgument(op, param, msg string) error {
	return &QueryError{Op: op, Param: param, Message: msg, Err: ErrInvalidArgument}
}

func notFound(op, param, msg string) error {
	return &QueryError{Op: op, Param: param, Message: msg, Err: ErrNotFound}
}

// ClientMessage extracts the client-facing message from err, falling back to
// err.Error() for errors that are not a *QueryError.
func ClientMessage(err error) string {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Message
	}
	return err.Error()
}
