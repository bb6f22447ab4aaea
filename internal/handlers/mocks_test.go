package handlers

import (
	"context"

	"github.com/courtside/rating-api/internal/models"
)

// MockSubmissionService
type MockSubmissionService struct {
	SubmitMatchFunc func(ctx context.Context, input models.MatchInput) (*models.SubmissionResult, error)
}

func (m *MockSubmissionService) SubmitMatch(ctx context.Context, input models.MatchInput) (*models.SubmissionResult, error) {
	if m.SubmitMatchFunc != nil {
		return m.SubmitMatchFunc(ctx, input)
	}
	return &models.SubmissionResult{Match: &models.Match{ID: "mock-match"}}, nil
}

// MockStatsService
type MockStatsService struct {
	RivalriesFunc     func(ctx context.Context) ([]models.Rivalry, error)
	SynergiesFunc     func(ctx context.Context) ([]models.Synergy, error)
	TrendFunc         func(ctx context.Context, topN int) (*models.TrendResult, error)
	SummaryFunc       func(ctx context.Context) (*models.ClubSummary, error)
	RecentMatchesFunc func(ctx context.Context, limit int) ([]models.Match, error)
}

func (m *MockStatsService) Rivalries(ctx context.Context) ([]models.Rivalry, error) {
	if m.RivalriesFunc != nil {
		return m.RivalriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockStatsService) Synergies(ctx context.Context) ([]models.Synergy, error) {
	if m.SynergiesFunc != nil {
		return m.SynergiesFunc(ctx)
	}
	return nil, nil
}

func (m *MockStatsService) Trend(ctx context.Context, topN int) (*models.TrendResult, error) {
	if m.TrendFunc != nil {
		return m.TrendFunc(ctx, topN)
	}
	return &models.TrendResult{Rows: []models.TrendRow{}}, nil
}

func (m *MockStatsService) Summary(ctx context.Context) (*models.ClubSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &models.ClubSummary{}, nil
}

func (m *MockStatsService) RecentMatches(ctx context.Context, limit int) ([]models.Match, error) {
	if m.RecentMatchesFunc != nil {
		return m.RecentMatchesFunc(ctx, limit)
	}
	return nil, nil
}

// MockRosterService
type MockRosterService struct {
	CreatePlayerFunc func(ctx context.Context, name string) (*models.Player, error)
	LeaderboardFunc  func(ctx context.Context) ([]models.Player, error)
	BalanceFunc      func(ctx context.Context, playerIDs []string) (*models.BalanceResult, error)
}

func (m *MockRosterService) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, name)
	}
	return &models.Player{ID: "mock-player", Name: name, Rating: 1000}, nil
}

func (m *MockRosterService) Leaderboard(ctx context.Context) ([]models.Player, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx)
	}
	return nil, nil
}

func (m *MockRosterService) Balance(ctx context.Context, playerIDs []string) (*models.BalanceResult, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, playerIDs)
	}
	return &models.BalanceResult{}, nil
}
