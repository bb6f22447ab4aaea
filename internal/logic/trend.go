package logic

import (
	"sort"

	"github.com/courtside/rating-api/internal/models"
)

const trendDateLayout = "2006-01-02"

// BuildRatingTrend replays the ledger into a forward-filled time series for
// a fixed set of tracked players: one row per distinct calendar date, each
// row starting as a copy of the previous one, overwritten with the
// rating_after of any entry whose match involved a tracked player that day.
// A player has no cell at all until their first recorded data point; no
// synthetic default is ever emitted.
//
// The whole ledger is replayed on every call; there is no persisted
// time-series cache.
func BuildRatingTrend(history []models.HistoryWithMatch, tracked []models.PlayerRef) models.TrendResult {
	result := models.TrendResult{
		Players: tracked,
		Rows:    []models.TrendRow{},
	}
	if len(history) == 0 || len(tracked) == 0 {
		return result
	}

	trackedIDs := make(map[string]bool, len(tracked))
	for _, p := range tracked {
		trackedIDs[p.ID] = true
	}

	sorted := make([]models.HistoryWithMatch, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	lastKnown := make(map[string]int, len(tracked))
	var current *models.TrendRow

	for i := range sorted {
		entry := &sorted[i]
		day := entry.Date.Format(trendDateLayout)

		if current == nil || current.Date != day {
			row := models.TrendRow{Date: day, Ratings: make(map[string]int, len(tracked))}
			// Carry forward every previously known rating.
			for id, rating := range lastKnown {
				row.Ratings[id] = rating
			}
			result.Rows = append(result.Rows, row)
			current = &result.Rows[len(result.Rows)-1]
		}

		// The ledger rows carry no player column; attribute the entry's
		// rating_after to the tracked participants of its match.
		for _, p := range entry.Participants {
			if trackedIDs[p.ID] {
				lastKnown[p.ID] = entry.RatingAfter
				current.Ratings[p.ID] = entry.RatingAfter
			}
		}
	}

	return result
}
