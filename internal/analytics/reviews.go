// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"github.com/tomtom215/gamestats/internal/models"
)

// DeveloperReviews counts negative and positive reviews of a developer's
// games. Reviews of catalog-less items are ignored, as are neutral ones.
// A developer with reviewed games that are all neutral gets zero counts; a
// developer with no reviewed games at all is reported as not found.
func (d *Dataset) DeveloperReviews(developer string) (models.DeveloperSentiment, error) {
	reviews := InnerJoin(d.sentiment, d.games, sentimentItemID, gameID)
	mine := Filter(reviews, func(r reviewedGame) bool {
		return r.Right.Developer == developer
	})
	if len(mine) == 0 {
		return models.DeveloperSentiment{}, notFound("DeveloperReviews", developer,
			"No se encontró información sobre la desarrolladora "+developer+".")
	}

	polar := Filter(mine, func(r reviewedGame) bool {
		return r.Left.Sentiment != models.SentimentNeutral
	})
	byCategory := GroupBy(polar, func(r reviewedGame) (models.Sentiment, bool) {
		return r.Left.Sentiment, r.Left.Sentiment.Known()
	})

	result := models.DeveloperSentiment{Developer: developer}
	for _, g := range byCategory {
		switch g.Key {
		case models.SentimentNegative:
			result.Negative = len(g.Rows)
		case models.SentimentPositive:
			result.Positive = len(g.Rows)
		}
	}
	return result, nil
}
