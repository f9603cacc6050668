// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"fmt"

	"github.com/tomtom215/gamestats/internal/models"
)

// UserProfile reports what a user spent on owned items, the share of their
// reviews that recommend the game and their library size. Users with no rows
// get zeros rather than an error.
//
// Library size sums items_count over the user's library rows. The source
// repeats the user's total on each row, and the sum is kept as is.
func (d *Dataset) UserProfile(userID string) models.UserProfile {
	uid := NormalizeID(userID)

	library := Filter(d.items, func(li models.LibraryItem) bool {
		return li.UserID == uid
	})
	owned := InnerJoin(library, d.games, libraryItemID, gameID)
	spent := SumFloat(owned, func(j Joined[models.LibraryItem, models.Game]) (float64, bool) {
		if j.Right.Price == nil {
			return 0, false
		}
		return *j.Right.Price, true
	})
	itemCount := SumInt(library, func(li models.LibraryItem) int64 {
		return li.ItemsCount
	})

	reviews := Filter(d.reviews, func(r models.Review) bool {
		return r.UserID == uid
	})
	rate := 0.0
	if len(reviews) > 0 {
		recommended := Count(reviews, func(r models.Review) bool { return r.Recommend })
		rate = float64(recommended) / float64(len(reviews)) * 100
	}

	return models.UserProfile{
		User:               userID,
		MoneySpent:         fmt.Sprintf("%.2f USD", spent),
		RecommendationRate: fmt.Sprintf("%.2f%%", rate),
		ItemCount:          itemCount,
	}
}
