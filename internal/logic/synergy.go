package logic

import (
	"math"
	"sort"

	"github.com/courtside/rating-api/internal/models"
)

const (
	// minSynergyMatches is the qualification threshold for a teammate pair.
	minSynergyMatches = 3

	synergyWinRateWeight   = 0.7
	synergyScoreDiffWeight = 0.3
	// synergyConfidenceCap discounts pairs with few matches: the score is
	// scaled by min(played/cap, 1).
	synergyConfidenceCap = 10.0
)

type synergyAccumulator struct {
	models.Synergy
	totalScoreDiff int
	pairKey        string
}

// ComputeSynergies scans the match corpus and ranks doubles teammate pairs
// by partnership effectiveness. Each side of each doubles match contributes
// independently to its own pair. Pairs with fewer than three matches are
// excluded; at most the top two are returned, descending by synergy score.
func ComputeSynergies(matches []models.Match) []models.Synergy {
	pairs := make(map[string]*synergyAccumulator)

	for i := range matches {
		m := &matches[i]
		if m.Team1Player2 != nil {
			accumulateSide(pairs, m.Team1Player1, *m.Team1Player2,
				m.Winner == models.WinnerTeam1, m.Team1Score-m.Team2Score)
		}
		if m.Team2Player2 != nil {
			accumulateSide(pairs, m.Team2Player1, *m.Team2Player2,
				m.Winner == models.WinnerTeam2, m.Team2Score-m.Team1Score)
		}
	}

	qualified := make([]*synergyAccumulator, 0, len(pairs))
	for _, acc := range pairs {
		if acc.MatchesPlayed >= minSynergyMatches {
			qualified = append(qualified, acc)
		}
	}

	sort.Slice(qualified, func(i, j int) bool {
		if qualified[i].SynergyScore != qualified[j].SynergyScore {
			return qualified[i].SynergyScore > qualified[j].SynergyScore
		}
		return qualified[i].pairKey < qualified[j].pairKey
	})

	if len(qualified) > topPairLimit {
		qualified = qualified[:topPairLimit]
	}
	out := make([]models.Synergy, len(qualified))
	for i, acc := range qualified {
		out[i] = acc.Synergy
	}
	return out
}

func accumulateSide(pairs map[string]*synergyAccumulator, p1, p2 models.PlayerRef, won bool, scoreDiff int) {
	key := pairKey(p1.ID, p2.ID)
	acc, ok := pairs[key]
	if !ok {
		acc = &synergyAccumulator{pairKey: key}
		if p1.ID < p2.ID {
			acc.Player1, acc.Player2 = p1, p2
		} else {
			acc.Player1, acc.Player2 = p2, p1
		}
		pairs[key] = acc
	}

	acc.MatchesPlayed++
	if won {
		acc.MatchesWon++
	}
	acc.WinRate = float64(acc.MatchesWon) / float64(acc.MatchesPlayed)
	acc.totalScoreDiff += scoreDiff
	acc.AvgScoreDiff = float64(acc.totalScoreDiff) / float64(acc.MatchesPlayed)

	confidence := math.Min(float64(acc.MatchesPlayed)/synergyConfidenceCap, 1)
	acc.SynergyScore = (acc.WinRate*synergyWinRateWeight +
		(acc.AvgScoreDiff/10)*synergyScoreDiffWeight) * confidence
}
