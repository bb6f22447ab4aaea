package models

import "time"

// MatchHistoryEntry is one append-only ledger row: one per participant per
// match. The schema carries no player column; the player is implicit and
// resolved through the match's embedded participants. All entries sharing a
// match_id on the same team carry the identical rating_change.
type MatchHistoryEntry struct {
	ID              string    `json:"id"`
	MatchID         string    `json:"match_id"`
	RatingBefore    int       `json:"rating_before"`
	RatingAfter     int       `json:"rating_after"`
	RatingChange    int       `json:"rating_change"`
	ScoreDifference int       `json:"score_difference"`
	IsWinner        bool      `json:"is_winner"`
	Date            time.Time `json:"date"`
}

// HistoryWithMatch is a ledger row joined with its match's participants,
// the shape the trend reconstructor replays.
type HistoryWithMatch struct {
	MatchHistoryEntry
	Participants []PlayerRef `json:"participants"`
}
