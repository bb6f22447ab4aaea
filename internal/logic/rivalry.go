package logic

import (
	"sort"

	"github.com/courtside/rating-api/internal/models"
)

const (
	// minRivalryMatches is the qualification threshold for a pair.
	minRivalryMatches = 2
	// topPairLimit caps both rivalry and synergy reports.
	topPairLimit = 2
)

type rivalryAccumulator struct {
	models.Rivalry
	pairKey string
}

// ComputeRivalries scans the match corpus and ranks singles player pairs by
// head-to-head closeness: ascending average absolute score difference, ties
// broken by descending match count. Pairs with fewer than two matches are
// excluded; at most the top two are returned. The whole corpus is rescanned
// on every call, and identical corpora produce identical ordered output.
func ComputeRivalries(matches []models.Match) []models.Rivalry {
	pairs := make(map[string]*rivalryAccumulator)

	for i := range matches {
		m := &matches[i]
		if !m.IsSingles() {
			continue
		}
		p1, p2 := m.Team1Player1, m.Team2Player1

		key := pairKey(p1.ID, p2.ID)
		acc, ok := pairs[key]
		if !ok {
			acc = &rivalryAccumulator{pairKey: key}
			// Order the named players by ID so the same pair always reports
			// the same way around.
			if p1.ID < p2.ID {
				acc.Player1, acc.Player2 = p1, p2
			} else {
				acc.Player1, acc.Player2 = p2, p1
			}
			pairs[key] = acc
		}

		diff := m.Team1Score - m.Team2Score
		if diff < 0 {
			diff = -diff
		}
		// True running mean, not a biased approximation.
		total := acc.AvgScoreDiff*float64(acc.MatchCount) + float64(diff)
		acc.MatchCount++
		acc.AvgScoreDiff = total / float64(acc.MatchCount)

		winnerID := p1.ID
		if m.Winner == models.WinnerTeam2 {
			winnerID = p2.ID
		}
		if winnerID == acc.Player1.ID {
			acc.Player1Wins++
		} else {
			acc.Player2Wins++
		}
	}

	qualified := make([]*rivalryAccumulator, 0, len(pairs))
	for _, acc := range pairs {
		if acc.MatchCount >= minRivalryMatches {
			qualified = append(qualified, acc)
		}
	}

	sort.Slice(qualified, func(i, j int) bool {
		if qualified[i].AvgScoreDiff != qualified[j].AvgScoreDiff {
			return qualified[i].AvgScoreDiff < qualified[j].AvgScoreDiff
		}
		if qualified[i].MatchCount != qualified[j].MatchCount {
			return qualified[i].MatchCount > qualified[j].MatchCount
		}
		return qualified[i].pairKey < qualified[j].pairKey
	})

	if len(qualified) > topPairLimit {
		qualified = qualified[:topPairLimit]
	}
	out := make([]models.Rivalry, len(qualified))
	for i, acc := range qualified {
		out[i] = acc.Rivalry
	}
	return out
}

func pairKey(id1, id2 string) string {
	if id1 < id2 {
		return id1 + "-" + id2
	}
	return id2 + "-" + id1
}
