package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/models"
)

func TestCreatePlayer(t *testing.T) {
	store := &MockStore{
		CreatePlayerFunc: func(ctx context.Context, p *models.Player) error {
			p.ID = "p1"
			return nil
		},
	}
	svc := NewRosterService(store, zap.NewNop())

	player, err := svc.CreatePlayer(context.Background(), "  Alice ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.ID != "p1" {
		t.Fatal("store-assigned ID was lost")
	}
	if player.Name != "Alice" {
		t.Fatalf("name = %q, want trimmed %q", player.Name, "Alice")
	}
	if player.Rating != DefaultInitialRating {
		t.Fatalf("rating = %v, want %d", player.Rating, DefaultInitialRating)
	}
	if player.MatchesPlayed != 0 || player.Wins != 0 || player.LastPlayedAt != nil {
		t.Fatalf("new player carries history: %+v", player)
	}
}

func TestCreatePlayerEmptyName(t *testing.T) {
	svc := NewRosterService(&MockStore{}, zap.NewNop())

	_, err := svc.CreatePlayer(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}

func TestBalanceResolvesSelection(t *testing.T) {
	store := &MockStore{
		GetPlayersByIDsFunc: func(ctx context.Context, ids []string) ([]models.Player, error) {
			return []models.Player{
				{ID: "p1", Name: "Alice", Rating: 1200},
				{ID: "p2", Name: "Bob", Rating: 1100},
				{ID: "p3", Name: "Cara", Rating: 1000},
				{ID: "p4", Name: "Dave", Rating: 900},
			}, nil
		},
	}
	svc := NewRosterService(store, zap.NewNop())

	result, err := svc.Balance(context.Background(), []string{"p1", "p2", "p3", "p4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.TeamA.Players) != 2 || len(result.TeamB.Players) != 2 {
		t.Fatalf("rosters = %d/%d, want 2/2", len(result.TeamA.Players), len(result.TeamB.Players))
	}
	if result.TeamA.TotalRating != 2200 || result.TeamB.TotalRating != 2000 {
		t.Fatalf("totals = %v/%v, want 2200/2000", result.TeamA.TotalRating, result.TeamB.TotalRating)
	}
}

func TestBalanceUnknownPlayer(t *testing.T) {
	store := &MockStore{
		GetPlayersByIDsFunc: func(ctx context.Context, ids []string) ([]models.Player, error) {
			return []models.Player{{ID: "p1", Name: "Alice", Rating: 1000}}, nil
		},
	}
	svc := NewRosterService(store, zap.NewNop())

	_, err := svc.Balance(context.Background(), []string{"p1", "ghost"})
	if !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}
