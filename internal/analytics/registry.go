// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"strconv"
	"strings"
)

// Routine names. They double as the URL path segment of each query and as
// the routine label on metrics and cache keys.
const (
	RoutineDeveloper         = "developer"
	RoutineUserData          = "userdata"
	RoutineUserForGenre      = "UserForGenre"
	RoutineBestDeveloperYear = "best_developer_year"
	RoutineDeveloperReviews  = "developer_reviews_analysis"
)

// Routines lists every routine name in the order they are documented.
func Routines() []string {
	return []string{
		RoutineDeveloper,
		RoutineUserData,
		RoutineUserForGenre,
		RoutineBestDeveloperYear,
		RoutineDeveloperReviews,
	}
}

// ParseYear converts a year parameter given as text. Anything that is not a
// base-10 integer is an invalid argument.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalidArgument("ParseYear", s,
			"Input should be a valid integer, unable to parse string as an integer")
	}
	return year, nil
}

// Run dispatches routine by name with its single text parameter. Unknown
// routine names are reported as ErrNotFound.
func (d *Dataset) Run(routine, param string) (interface{}, error) {
	switch routine {
	case RoutineDeveloper:
		return d.DeveloperSummary(param), nil
	case RoutineUserData:
		return d.UserProfile(param), nil
	case RoutineUserForGenre:
		return d.TopUserForGenre(param), nil
	case RoutineBestDeveloperYear:
		year, err := ParseYear(param)
		if err != nil {
			return nil, err
		}
		return d.BestDevelopersByYear(year)
	case RoutineDeveloperReviews:
		return d.DeveloperReviews(param)
	default:
		return nil, notFound("Run", routine,
			"unknown routine "+strconv.Quote(routine)+"; want one of "+strings.Join(Routines(), ", "))
	}
}
