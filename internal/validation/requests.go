// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package validation

// DeveloperRequest is the path parameter of the developer catalog summary.
type DeveloperRequest struct {
	Developer string `param:"desarrollador" validate:"required"`
}

// DeveloperReviewsRequest is the path parameter of the review breakdown,
// which names its placeholder desarrolladora.
type DeveloperReviewsRequest struct {
	Developer string `param:"desarrolladora" validate:"required"`
}

// UserRequest is the path parameter of the user profile routine.
type UserRequest struct {
	UserID string `param:"user_id" validate:"required"`
}

// GenreRequest is the path parameter of the top-user-by-genre routine.
type GenreRequest struct {
	Genre string `param:"genero" validate:"required"`
}
