package logic

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/models"
)

// submissionState tracks how far a submission progressed, for logging and
// for the partial-write report.
type submissionState string

const (
	statePending         submissionState = "pending"
	stateValidated       submissionState = "validated"
	statePersisted       submissionState = "persisted"
	stateRatingComputed  submissionState = "rating_computed"
	statePlayersUpdated  submissionState = "players_updated"
	stateHistoryAppended submissionState = "history_appended"
	stateComplete        submissionState = "complete"
)

// SubmissionService orchestrates a match submission: validate, persist the
// match, run the rating engine, update every participant's cumulative
// stats, and append the ledger entries. Steps after validation run inside a
// single storage transaction so a mid-flight failure leaves no partial
// state behind.
type SubmissionService struct {
	store    Store
	engine   *Engine
	maxScore int
	logger   *zap.SugaredLogger
}

func NewSubmissionService(store Store, engine *Engine, maxScore int, logger *zap.Logger) *SubmissionService {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	return &SubmissionService{
		store:    store,
		engine:   engine,
		maxScore: maxScore,
		logger:   logger.Sugar(),
	}
}

// SubmitMatch runs the full workflow and returns the created match, its
// ledger entries, and the updated players. Validation errors are returned
// before any write happens.
func (s *SubmissionService) SubmitMatch(ctx context.Context, input models.MatchInput) (*models.SubmissionResult, error) {
	state := statePending

	if err := ValidateMatch(input.Team1PlayerIDs, input.Team2PlayerIDs, input.Team1Score, input.Team2Score, s.maxScore); err != nil {
		return nil, err
	}

	allIDs := append(append([]string{}, input.Team1PlayerIDs...), input.Team2PlayerIDs...)
	players, err := s.store.GetPlayersByIDs(ctx, allIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch participants: %w", err)
	}
	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, id := range allIDs {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidRoster, id)
		}
	}
	state = stateValidated

	team1 := playersFor(byID, input.Team1PlayerIDs)
	team2 := playersFor(byID, input.Team2PlayerIDs)

	winner := models.WinnerTeam1
	if input.Team2Score > input.Team1Score {
		winner = models.WinnerTeam2
	}

	match := buildMatch(team1, team2, input, winner)

	tx, err := s.store.BeginSubmission(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submission: %w", err)
	}

	var completed []string
	if err := tx.InsertMatch(ctx, match); err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("persist match: %w", err)
	}
	state = statePersisted
	completed = append(completed, "match")

	team1Delta, team2Delta := s.engine.ComputeMatchRatings(TeamRating(team1), TeamRating(team2), winner)
	state = stateRatingComputed

	date := input.EffectiveDate()
	updated := make([]models.Player, 0, len(team1)+len(team2))
	entries := make([]models.MatchHistoryEntry, 0, len(team1)+len(team2))
	scoreDiff := input.Team1Score - input.Team2Score

	for _, p := range team1 {
		up, entry := applyTeamDelta(p, match.ID, team1Delta, scoreDiff, winner == models.WinnerTeam1, date)
		updated = append(updated, up)
		entries = append(entries, entry)
	}
	for _, p := range team2 {
		up, entry := applyTeamDelta(p, match.ID, team2Delta, -scoreDiff, winner == models.WinnerTeam2, date)
		updated = append(updated, up)
		entries = append(entries, entry)
	}

	if err := tx.UpdatePlayers(ctx, updated); err != nil {
		return nil, s.abort(ctx, tx, match.ID, completed, state, fmt.Errorf("update players: %w", err))
	}
	state = statePlayersUpdated
	completed = append(completed, "players")

	if err := tx.InsertHistoryEntries(ctx, entries); err != nil {
		return nil, s.abort(ctx, tx, match.ID, completed, state, fmt.Errorf("append history: %w", err))
	}
	state = stateHistoryAppended
	completed = append(completed, "history")

	if err := tx.Commit(ctx); err != nil {
		return nil, s.abort(ctx, tx, match.ID, completed, state, fmt.Errorf("commit submission: %w", err))
	}
	state = stateComplete

	s.logger.Infow("match submitted",
		"match_id", match.ID,
		"winner", winner,
		"team1_delta", team1Delta,
		"team2_delta", team2Delta,
		"state", state,
	)

	return &models.SubmissionResult{
		Match:          match,
		HistoryEntries: entries,
		UpdatedPlayers: updated,
		Team1Delta:     team1Delta,
		Team2Delta:     team2Delta,
	}, nil
}

// abort rolls the transaction back. If the store cannot roll back after the
// match was persisted, the caller receives a PartialWriteError carrying the
// match ID and the writes that went through, so the failure is never
// mistaken for either success or a clean total failure.
func (s *SubmissionService) abort(ctx context.Context, tx SubmissionTx, matchID string, completed []string, state submissionState, err error) error {
	if rbErr := tx.Rollback(ctx); rbErr != nil {
		s.logger.Errorw("submission rollback failed",
			"match_id", matchID,
			"state", state,
			"completed", completed,
			"error", err,
			"rollback_error", rbErr,
		)
		return &PartialWriteError{
			MatchID:   matchID,
			Completed: completed,
			Err:       fmt.Errorf("%v (rollback failed: %v)", err, rbErr),
		}
	}
	s.logger.Warnw("submission rolled back", "match_id", matchID, "state", state, "error", err)
	return err
}

func playersFor(byID map[string]models.Player, ids []string) []models.Player {
	out := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

func buildMatch(team1, team2 []models.Player, input models.MatchInput, winner models.Winner) *models.Match {
	m := &models.Match{
		Team1Player1: ref(team1[0]),
		Team2Player1: ref(team2[0]),
		Team1Score:   input.Team1Score,
		Team2Score:   input.Team2Score,
		Winner:       winner,
		CreatedAt:    input.EffectiveDate(),
	}
	if len(team1) == 2 {
		r := ref(team1[1])
		m.Team1Player2 = &r
	}
	if len(team2) == 2 {
		r := ref(team2[1])
		m.Team2Player2 = &r
	}
	return m
}

func ref(p models.Player) models.PlayerRef {
	return models.PlayerRef{ID: p.ID, Name: p.Name}
}

// applyTeamDelta produces a participant's updated record and matching
// ledger entry. The team delta is applied as-is to every member; streaks
// increment on a win and reset to zero on a loss.
func applyTeamDelta(p models.Player, matchID string, delta, scoreDiff int, won bool, date time.Time) (models.Player, models.MatchHistoryEntry) {
	before := p.DisplayRating()
	after := int(math.Round(p.Rating + float64(delta)))

	updated := p
	updated.Rating = p.Rating + float64(delta)
	updated.MatchesPlayed++
	if won {
		updated.Wins++
		updated.StreakCount++
	} else {
		updated.StreakCount = 0
	}
	d := date
	updated.LastPlayedAt = &d

	entry := models.MatchHistoryEntry{
		MatchID:         matchID,
		RatingBefore:    before,
		RatingAfter:     after,
		RatingChange:    delta,
		ScoreDifference: scoreDiff,
		IsWinner:        won,
		Date:            date,
	}
	return updated, entry
}
