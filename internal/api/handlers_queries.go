// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gamestats/internal/analytics"
	"github.com/tomtom215/gamestats/internal/validation"
)

// URL placeholders of the query routes.
const (
	paramDeveloper  = "desarrollador"
	paramUserID     = "user_id"
	paramGenre      = "genero"
	paramYear       = "año"
	paramDeveloperB = "desarrolladora"
)

// pathParam returns the decoded chi URL parameter. chi routes on RawPath
// when the request has one, and then parameters arrive still escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// validate answers 400 and returns false when req fails its tags.
func validate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, verr.Error(), verr.Details(), verr)
		return false
	}
	return true
}

// Developer handles GET /developer/{desarrollador}.
func (h *Handler) Developer(w http.ResponseWriter, r *http.Request) {
	req := validation.DeveloperRequest{Developer: pathParam(r, paramDeveloper)}
	if !validate(w, r, &req) {
		return
	}
	h.execute(w, r, analytics.RoutineDeveloper, req.Developer, func() (interface{}, error) {
		return h.data.DeveloperSummary(req.Developer), nil
	})
}

// UserData handles GET /userdata/{user_id}.
func (h *Handler) UserData(w http.ResponseWriter, r *http.Request) {
	req := validation.UserRequest{UserID: pathParam(r, paramUserID)}
	if !validate(w, r, &req) {
		return
	}
	h.execute(w, r, analytics.RoutineUserData, req.UserID, func() (interface{}, error) {
		return h.data.UserProfile(req.UserID), nil
	})
}

// UserForGenre handles GET /UserForGenre/{genero}.
func (h *Handler) UserForGenre(w http.ResponseWriter, r *http.Request) {
	req := validation.GenreRequest{Genre: pathParam(r, paramGenre)}
	if !validate(w, r, &req) {
		return
	}
	h.execute(w, r, analytics.RoutineUserForGenre, req.Genre, func() (interface{}, error) {
		return h.data.TopUserForGenre(req.Genre), nil
	})
}

// BestDeveloperYear handles GET /best_developer_year/{año}.
func (h *Handler) BestDeveloperYear(w http.ResponseWriter, r *http.Request) {
	raw := pathParam(r, paramYear)
	year, err := analytics.ParseYear(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, analytics.ClientMessage(err),
			map[string]interface{}{"field": paramYear, "value": raw}, err)
		return
	}
	h.execute(w, r, analytics.RoutineBestDeveloperYear, strconv.Itoa(year), func() (interface{}, error) {
		return h.data.BestDevelopersByYear(year)
	})
}

// DeveloperReviews handles GET /developer_reviews_analysis/{desarrolladora}.
func (h *Handler) DeveloperReviews(w http.ResponseWriter, r *http.Request) {
	req := validation.DeveloperReviewsRequest{Developer: pathParam(r, paramDeveloperB)}
	if !validate(w, r, &req) {
		return
	}
	h.execute(w, r, analytics.RoutineDeveloperReviews, req.Developer, func() (interface{}, error) {
		return h.data.DeveloperReviews(req.Developer)
	})
}
