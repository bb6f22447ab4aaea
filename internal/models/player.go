package models

import (
	"math"
	"time"
)

// Player is a registered club member. Rating is stored as a signed real
// number; display surfaces round it to the nearest integer.
type Player struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Rating        float64    `json:"rating"`
	MatchesPlayed int        `json:"matches_played"`
	Wins          int        `json:"wins"`
	StreakCount   int        `json:"streak_count"`
	LastPlayedAt  *time.Time `json:"last_played_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DisplayRating is the integer rating shown to users and written to the ledger.
func (p *Player) DisplayRating() int {
	return int(math.Round(p.Rating))
}

// WinRate returns wins/matches_played, 0 for players with no matches.
func (p *Player) WinRate() float64 {
	if p.MatchesPlayed == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.MatchesPlayed)
}

// PlayerRef is the embedded participant shape returned by match and
// history queries.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
