package logic

import (
	"context"
	"encoding/json"
	"time"

	"github.com/courtside/rating-api/internal/models"
)

// Mocks shared by the service tests.

type MockStore struct {
	ListPlayersByRatingFunc func(ctx context.Context) ([]models.Player, error)
	GetPlayersByIDsFunc     func(ctx context.Context, ids []string) ([]models.Player, error)
	CreatePlayerFunc        func(ctx context.Context, p *models.Player) error
	ListMatchesFunc         func(ctx context.Context, limit int) ([]models.Match, error)
	ListHistoryFunc         func(ctx context.Context) ([]models.HistoryWithMatch, error)
	BeginSubmissionFunc     func(ctx context.Context) (SubmissionTx, error)

	BeginCalls int
}

func (m *MockStore) ListPlayersByRating(ctx context.Context) ([]models.Player, error) {
	if m.ListPlayersByRatingFunc != nil {
		return m.ListPlayersByRatingFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) GetPlayersByIDs(ctx context.Context, ids []string) ([]models.Player, error) {
	if m.GetPlayersByIDsFunc != nil {
		return m.GetPlayersByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockStore) CreatePlayer(ctx context.Context, p *models.Player) error {
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, p)
	}
	if p.ID == "" {
		p.ID = "player-1"
	}
	return nil
}

func (m *MockStore) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockStore) ListHistory(ctx context.Context) ([]models.HistoryWithMatch, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) BeginSubmission(ctx context.Context) (SubmissionTx, error) {
	m.BeginCalls++
	if m.BeginSubmissionFunc != nil {
		return m.BeginSubmissionFunc(ctx)
	}
	return &MockSubmissionTx{}, nil
}

type MockSubmissionTx struct {
	InsertMatchFunc          func(ctx context.Context, match *models.Match) error
	UpdatePlayersFunc        func(ctx context.Context, players []models.Player) error
	InsertHistoryEntriesFunc func(ctx context.Context, entries []models.MatchHistoryEntry) error
	CommitFunc               func(ctx context.Context) error
	RollbackFunc             func(ctx context.Context) error

	InsertedMatch   *models.Match
	UpdatedPlayers  []models.Player
	InsertedHistory []models.MatchHistoryEntry
	Committed       bool
	RolledBack      bool
}

func (m *MockSubmissionTx) InsertMatch(ctx context.Context, match *models.Match) error {
	if m.InsertMatchFunc != nil {
		if err := m.InsertMatchFunc(ctx, match); err != nil {
			return err
		}
	}
	if match.ID == "" {
		match.ID = "match-1"
	}
	m.InsertedMatch = match
	return nil
}

func (m *MockSubmissionTx) UpdatePlayers(ctx context.Context, players []models.Player) error {
	if m.UpdatePlayersFunc != nil {
		if err := m.UpdatePlayersFunc(ctx, players); err != nil {
			return err
		}
	}
	m.UpdatedPlayers = players
	return nil
}

func (m *MockSubmissionTx) InsertHistoryEntries(ctx context.Context, entries []models.MatchHistoryEntry) error {
	if m.InsertHistoryEntriesFunc != nil {
		if err := m.InsertHistoryEntriesFunc(ctx, entries); err != nil {
			return err
		}
	}
	m.InsertedHistory = entries
	return nil
}

func (m *MockSubmissionTx) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockSubmissionTx) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockStatsCache stores JSON blobs in memory.
type MockStatsCache struct {
	data map[string][]byte

	Gets int
	Sets int
}

func NewMockStatsCache() *MockStatsCache {
	return &MockStatsCache{data: map[string][]byte{}}
}

func (m *MockStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.Gets++
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *MockStatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.Sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}
