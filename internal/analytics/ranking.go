// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"regexp"
	"strconv"

	"github.com/tomtom215/gamestats/internal/models"
)

// InvalidYear is the only year BestDevelopersByYear rejects.
const InvalidYear = -1

// RankingSize caps the number of developers returned by BestDevelopersByYear.
const RankingSize = 3

var postedYearPattern = regexp.MustCompile(`\b\d{4}\b`)

// PostedYear extracts the first standalone 4-digit number from a free-text
// review date. It reports ok=false when there is none.
func PostedYear(posted string) (string, bool) {
	y := postedYearPattern.FindString(posted)
	return y, y != ""
}

type reviewedGame = Joined[models.SentimentReview, models.Game]

// BestDevelopersByYear ranks developers by recommendations posted in year,
// counting only reviews that recommend the game and sit at the highest
// sentiment observed among that year's reviews. Several rows at the top tier
// all qualify. Reviews of items missing from the catalog carry no developer
// and are not ranked. Equal counts are ordered by developer name.
func (d *Dataset) BestDevelopersByYear(year int) (models.DeveloperRanking, error) {
	if year == InvalidYear {
		return nil, invalidArgument("BestDevelopersByYear", strconv.Itoa(year),
			"the provided year is -1, which is invalid.")
	}

	want := strconv.Itoa(year)
	reviews := LeftJoin(d.sentiment, d.games, sentimentItemID, gameID)
	inYear := Filter(reviews, func(r reviewedGame) bool {
		y, ok := PostedYear(r.Left.Posted)
		return ok && y == want
	})

	best, ok := Max(inYear, func(r reviewedGame) (models.Sentiment, bool) {
		return r.Left.Sentiment, r.Left.Sentiment.Known()
	})
	if !ok {
		return models.DeveloperRanking{}, nil
	}

	qualifying := Filter(inYear, func(r reviewedGame) bool {
		return r.Left.Recommend && r.Left.Sentiment == best
	})
	developers := GroupBy(qualifying, func(r reviewedGame) (string, bool) {
		return r.Right.Developer, r.Matched && r.Right.Developer != ""
	})

	counts := make([]Ranked[string, int], 0, len(developers))
	for _, g := range developers {
		counts = append(counts, Ranked[string, int]{
			Key:   g.Key,
			Value: Count(g.Rows, func(r reviewedGame) bool { return r.Left.Recommend }),
		})
	}

	ranking := make(models.DeveloperRanking, 0, RankingSize)
	for _, r := range TopK(counts, RankingSize) {
		ranking = append(ranking, r.Key)
	}
	return ranking, nil
}
