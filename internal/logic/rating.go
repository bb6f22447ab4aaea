package logic

import (
	"fmt"
	"math"

	"github.com/courtside/rating-api/internal/models"
)

// DefaultKFactor is the fixed sensitivity constant applied to every match,
// regardless of match count or rating spread.
const DefaultKFactor = 32

// DefaultMaxScore bounds valid game scores (inclusive).
const DefaultMaxScore = 30

// Engine computes rating deltas from completed matches. It is pure: no
// side effects, deterministic output for the same inputs.
type Engine struct {
	k float64
}

func NewEngine(kFactor float64) *Engine {
	if kFactor <= 0 {
		kFactor = DefaultKFactor
	}
	return &Engine{k: kFactor}
}

// ExpectedScore is the logistic, base-400 win estimate for a team with
// rating r against an opponent rated opp.
func (e *Engine) ExpectedScore(r, opp float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opp-r)/400.0))
}

// ComputeMatchRatings returns the rating delta for each team given the two
// pre-match team ratings and the winner. Each delta is computed once from
// the team's mean rating and is applied identically to every member of that
// team. That keeps teammates' rating movements in lockstep; it is an
// intentional simplification, not per-player expected scoring.
//
// Deltas are derived from rounded new ratings, so delta1+delta2 is close to
// but not always exactly zero.
func (e *Engine) ComputeMatchRatings(team1Rating, team2Rating float64, winner models.Winner) (team1Delta, team2Delta int) {
	team1Expected := e.ExpectedScore(team1Rating, team2Rating)
	team2Expected := e.ExpectedScore(team2Rating, team1Rating)

	var team1Actual, team2Actual float64
	if winner == models.WinnerTeam1 {
		team1Actual = 1.0
	} else {
		team2Actual = 1.0
	}

	team1New := math.Round(team1Rating + e.k*(team1Actual-team1Expected))
	team2New := math.Round(team2Rating + e.k*(team2Actual-team2Expected))

	team1Delta = int(team1New) - int(math.Round(team1Rating))
	team2Delta = int(team2New) - int(math.Round(team2Rating))
	return team1Delta, team2Delta
}

// TeamRating is the arithmetic mean of a team's one or two player ratings.
func TeamRating(players []models.Player) float64 {
	if len(players) == 0 {
		return 0
	}
	var sum float64
	for _, p := range players {
		sum += p.Rating
	}
	return sum / float64(len(players))
}

// ValidateMatch enforces the pre-write invariants: team sizes of one or two,
// no player on both teams or twice on one team, scores within [0, maxScore],
// and no ties (there is no tie-break rule).
func ValidateMatch(team1IDs, team2IDs []string, team1Score, team2Score, maxScore int) error {
	if len(team1IDs) < 1 || len(team1IDs) > 2 {
		return fmt.Errorf("%w: team1 has %d players, want 1 or 2", ErrInvalidRoster, len(team1IDs))
	}
	if len(team2IDs) < 1 || len(team2IDs) > 2 {
		return fmt.Errorf("%w: team2 has %d players, want 1 or 2", ErrInvalidRoster, len(team2IDs))
	}

	seen := make(map[string]string, 4)
	for _, id := range team1IDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: player %s listed twice on team1", ErrInvalidRoster, id)
		}
		seen[id] = "team1"
	}
	for _, id := range team2IDs {
		if team, dup := seen[id]; dup {
			if team == "team1" {
				return fmt.Errorf("%w: player %s appears on both teams", ErrInvalidRoster, id)
			}
			return fmt.Errorf("%w: player %s listed twice on team2", ErrInvalidRoster, id)
		}
		seen[id] = "team2"
	}

	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	if team1Score < 0 || team1Score > maxScore || team2Score < 0 || team2Score > maxScore {
		return fmt.Errorf("%w: scores must be between 0 and %d", ErrInvalidMatch, maxScore)
	}
	if team1Score == team2Score {
		return fmt.Errorf("%w: match cannot end in a tie", ErrInvalidMatch)
	}
	return nil
}
