package models

import "time"

// Winner designates which side of a match won. Ties are invalid.
type Winner string

const (
	WinnerTeam1 Winner = "team1"
	WinnerTeam2 Winner = "team2"
)

// Match is an immutable record of one completed singles or doubles match.
// Second player slots are nil for singles. A match is never edited or
// deleted after creation.
type Match struct {
	ID           string     `json:"id"`
	Team1Player1 PlayerRef  `json:"team1_player1"`
	Team1Player2 *PlayerRef `json:"team1_player2,omitempty"`
	Team2Player1 PlayerRef  `json:"team2_player1"`
	Team2Player2 *PlayerRef `json:"team2_player2,omitempty"`
	Team1Score   int        `json:"team1_score"`
	Team2Score   int        `json:"team2_score"`
	Winner       Winner     `json:"winner"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Team1 returns team 1's one or two participants.
func (m *Match) Team1() []PlayerRef {
	refs := []PlayerRef{m.Team1Player1}
	if m.Team1Player2 != nil {
		refs = append(refs, *m.Team1Player2)
	}
	return refs
}

// Team2 returns team 2's one or two participants.
func (m *Match) Team2() []PlayerRef {
	refs := []PlayerRef{m.Team2Player1}
	if m.Team2Player2 != nil {
		refs = append(refs, *m.Team2Player2)
	}
	return refs
}

// Participants returns every participant, team 1 first.
func (m *Match) Participants() []PlayerRef {
	return append(m.Team1(), m.Team2()...)
}

// IsSingles reports whether the match had exactly one player per side.
func (m *Match) IsSingles() bool {
	return m.Team1Player2 == nil && m.Team2Player2 == nil
}

// IsDoubles reports whether both sides fielded two players.
func (m *Match) IsDoubles() bool {
	return m.Team1Player2 != nil && m.Team2Player2 != nil
}
