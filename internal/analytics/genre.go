// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"github.com/tomtom215/gamestats/internal/models"
)

type genrePlay = Joined[models.Game, models.LibraryItem]

// TopUserForGenre finds the user with the most playtime on games whose genre
// field equals genre exactly, and totals playtime per release year over the
// same rows. Ties for the top total go to the lowest user id. When nothing
// matches the result has Found=false.
func (d *Dataset) TopUserForGenre(genre string) models.GenreTopUser {
	result := models.GenreTopUser{Genre: genre}

	catalog := Filter(d.games, func(g models.Game) bool {
		return g.Genres == genre
	})
	plays := InnerJoin(catalog, d.items, gameID, libraryItemID)

	users := GroupBy(plays, func(p genrePlay) (string, bool) {
		return p.Right.UserID, true
	})
	totals := make([]Ranked[string, int64], 0, len(users))
	for _, u := range users {
		totals = append(totals, Ranked[string, int64]{Key: u.Key, Value: sumPlaytime(u.Rows)})
	}

	top := TopK(totals, 1)
	if len(top) == 0 {
		return result
	}
	result.Found = true
	result.User = top[0].Key

	years := GroupBy(plays, func(p genrePlay) (int, bool) {
		return releaseYear(p.Left)
	})
	SortGroups(years)
	result.Hours = make([]models.YearHours, 0, len(years))
	for _, y := range years {
		result.Hours = append(result.Hours, models.YearHours{Year: y.Key, Hours: sumPlaytime(y.Rows)})
	}
	return result
}

func sumPlaytime(rows []genrePlay) int64 {
	return SumInt(rows, func(p genrePlay) int64 { return p.Right.PlaytimeForever })
}
