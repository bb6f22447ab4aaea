package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation on any request payload.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// MatchInput is the submission payload. The winner is derived from the
// scores, so it cannot disagree with them.
type MatchInput struct {
	Team1PlayerIDs []string   `json:"team1_player_ids" validate:"required,min=1,max=2,dive,required"`
	Team2PlayerIDs []string   `json:"team2_player_ids" validate:"required,min=1,max=2,dive,required"`
	Team1Score     int        `json:"team1_score" validate:"min=0"`
	Team2Score     int        `json:"team2_score" validate:"min=0"`
	PlayedAt       *time.Time `json:"played_at,omitempty"`
}

// EffectiveDate returns the match's effective date, defaulting to now.
func (in *MatchInput) EffectiveDate() time.Time {
	if in.PlayedAt != nil {
		return *in.PlayedAt
	}
	return time.Now().UTC()
}

// PlayerInput registers a new player.
type PlayerInput struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// BalanceRequest selects the roster to split into two teams.
type BalanceRequest struct {
	PlayerIDs []string `json:"player_ids" validate:"required,dive,required"`
}

// SubmissionResult is everything a successful match submission produced.
type SubmissionResult struct {
	Match          *Match              `json:"match"`
	HistoryEntries []MatchHistoryEntry `json:"history_entries"`
	UpdatedPlayers []Player            `json:"updated_players"`
	Team1Delta     int                 `json:"team1_delta"`
	Team2Delta     int                 `json:"team2_delta"`
}
