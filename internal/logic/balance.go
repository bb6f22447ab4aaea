package logic

import (
	"sort"

	"github.com/courtside/rating-api/internal/models"
)

// BalanceTeams partitions the selected players into two rosters of roughly
// equal strength: stable sort by rating descending (original order breaks
// ties), then snake assignment — ranks 0,2,4,... to team A and 1,3,5,... to
// team B. This is a greedy heuristic; with irregular rating distributions
// one team can still end up stronger.
//
// The reported win probability is the linear ratio team/(team+opponent),
// deliberately not the logistic curve the rating engine uses. The two are
// known to diverge; keep them that way unless the product decides otherwise.
//
// Fewer than two selected players yields two empty rosters. Every call
// recomputes the partition from scratch over the given selection.
func BalanceTeams(selected []models.Player) models.BalanceResult {
	result := models.BalanceResult{
		TeamA: models.BalancedTeam{Players: []models.Player{}},
		TeamB: models.BalancedTeam{Players: []models.Player{}},
	}
	if len(selected) < 2 {
		return result
	}

	sorted := make([]models.Player, len(selected))
	copy(sorted, selected)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	for i, p := range sorted {
		if i%2 == 0 {
			result.TeamA.Players = append(result.TeamA.Players, p)
		} else {
			result.TeamB.Players = append(result.TeamB.Players, p)
		}
	}

	result.TeamA.TotalRating = totalRating(result.TeamA.Players)
	result.TeamB.TotalRating = totalRating(result.TeamB.Players)
	result.TeamA.WinProbability = linearWinProbability(result.TeamA.TotalRating, result.TeamB.TotalRating)
	result.TeamB.WinProbability = linearWinProbability(result.TeamB.TotalRating, result.TeamA.TotalRating)
	return result
}

func totalRating(players []models.Player) float64 {
	var sum float64
	for _, p := range players {
		sum += p.Rating
	}
	return sum
}

func linearWinProbability(team, opponent float64) float64 {
	total := team + opponent
	if total == 0 {
		return 0.5
	}
	return team / total
}
