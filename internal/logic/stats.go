package logic

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/models"
)

// StatsService serves the read-side aggregations. Every result is a full
// recompute over the current corpus; the optional cache only memoizes that
// recompute for a short TTL and is the seam where an incremental
// materialized view could slot in later.
type StatsService struct {
	store  Store
	cache  StatsCache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewStatsService(store Store, cache StatsCache, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

// Rivalries returns the top singles rivalries over the full match corpus.
func (s *StatsService) Rivalries(ctx context.Context) ([]models.Rivalry, error) {
	var cached []models.Rivalry
	if hit := s.cacheGet(ctx, "stats:rivalries", &cached); hit {
		return cached, nil
	}

	matches, err := s.store.ListMatches(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	rivalries := ComputeRivalries(matches)

	s.cacheSet(ctx, "stats:rivalries", rivalries)
	return rivalries, nil
}

// Synergies returns the top doubles partnerships over the full match corpus.
func (s *StatsService) Synergies(ctx context.Context) ([]models.Synergy, error) {
	var cached []models.Synergy
	if hit := s.cacheGet(ctx, "stats:synergies", &cached); hit {
		return cached, nil
	}

	matches, err := s.store.ListMatches(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	synergies := ComputeSynergies(matches)

	s.cacheSet(ctx, "stats:synergies", synergies)
	return synergies, nil
}

// Trend replays the ledger for the current top-N players of the leaderboard.
func (s *StatsService) Trend(ctx context.Context, topN int) (*models.TrendResult, error) {
	if topN <= 0 {
		topN = 2
	}

	key := fmt.Sprintf("stats:trend:%d", topN)
	var cached models.TrendResult
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return &cached, nil
	}

	players, err := s.store.ListPlayersByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if topN > len(players) {
		topN = len(players)
	}
	tracked := make([]models.PlayerRef, topN)
	for i := 0; i < topN; i++ {
		tracked[i] = models.PlayerRef{ID: players[i].ID, Name: players[i].Name}
	}

	history, err := s.store.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	result := BuildRatingTrend(history, tracked)
	s.cacheSet(ctx, key, result)
	return &result, nil
}

// RecentMatches returns the latest matches with embedded participants,
// newest first.
func (s *StatsService) RecentMatches(ctx context.Context, limit int) ([]models.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	matches, err := s.store.ListMatches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// Summary derives the dashboard cards from the player collection. Each
// match counts two to four participant slots, so total matches is the sum
// of matches_played halved.
func (s *StatsService) Summary(ctx context.Context) (*models.ClubSummary, error) {
	players, err := s.store.ListPlayersByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	summary := &models.ClubSummary{TotalPlayers: len(players)}
	if len(players) == 0 {
		return summary, nil
	}

	var ratingSum float64
	var matchSlots int
	for _, p := range players {
		ratingSum += p.Rating
		matchSlots += p.MatchesPlayed
	}
	summary.TotalMatches = matchSlots / 2
	summary.AverageRating = int(math.Round(ratingSum / float64(len(players))))
	top := players[0]
	summary.TopPlayer = &top
	return summary, nil
}

// cacheGet reports a hit. Cache failures degrade to a recompute, never to a
// request failure.
func (s *StatsService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warnw("stats cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *StatsService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warnw("stats cache write failed", "key", key, "error", err)
	}
}
