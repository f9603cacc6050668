// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"strconv"

	"github.com/tomtom215/gamestats/internal/models"
)

// DeveloperSummary groups a developer's catalog by release year and reports,
// per year, the number of items and the share priced at zero. The share is
// truncated to an integer percentage. Games without a parseable release date
// are left out. An unknown developer yields an empty, non-nil slice.
func (d *Dataset) DeveloperSummary(developer string) []models.DeveloperYearSummary {
	catalog := Filter(d.games, func(g models.Game) bool {
		return g.Developer == developer
	})

	years := GroupBy(catalog, releaseYear)
	SortGroups(years)

	out := make([]models.DeveloperYearSummary, 0, len(years))
	for _, y := range years {
		items := len(y.Rows)
		free := Count(y.Rows, func(g models.Game) bool { return g.IsFree() })
		out = append(out, models.DeveloperYearSummary{
			Year:        y.Key,
			Items:       items,
			FreeContent: strconv.Itoa(free*100/items) + "%",
		})
	}
	return out
}
