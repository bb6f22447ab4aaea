package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/models"
)

// DefaultInitialRating is the rating every new player starts at.
const DefaultInitialRating = 1000

// RosterService owns the player collection: registration, the leaderboard,
// and resolving a selection of IDs into balanced teams.
type RosterService struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewRosterService(store Store, logger *zap.Logger) *RosterService {
	return &RosterService{store: store, logger: logger.Sugar()}
}

// CreatePlayer registers a new player at the initial rating.
func (s *RosterService) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is empty", ErrInvalidRoster)
	}

	player := &models.Player{
		Name:      name,
		Rating:    DefaultInitialRating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	s.logger.Infow("player registered", "player_id", player.ID, "name", player.Name)
	return player, nil
}

// Leaderboard returns every player sorted by rating descending.
func (s *RosterService) Leaderboard(ctx context.Context) ([]models.Player, error) {
	players, err := s.store.ListPlayersByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// Balance resolves the selected IDs and splits them into two teams. Unknown
// IDs are an error; fewer than two resolved players yields two empty rosters.
func (s *RosterService) Balance(ctx context.Context, playerIDs []string) (*models.BalanceResult, error) {
	players, err := s.store.GetPlayersByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch selection: %w", err)
	}
	if len(players) != len(playerIDs) {
		found := make(map[string]bool, len(players))
		for _, p := range players {
			found[p.ID] = true
		}
		for _, id := range playerIDs {
			if !found[id] {
				return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidRoster, id)
			}
		}
	}

	result := BalanceTeams(players)
	return &result, nil
}
