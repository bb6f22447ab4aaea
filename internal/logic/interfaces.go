package logic

import (
	"context"
	"time"

	"github.com/courtside/rating-api/internal/models"
)

// Store is the storage collaborator the core depends on. The core never
// manages storage itself; it receives and returns plain records.
type Store interface {
	// ListPlayersByRating returns every player, sorted by rating descending.
	ListPlayersByRating(ctx context.Context) ([]models.Player, error)

	// GetPlayersByIDs resolves players by identifier. Missing IDs are simply
	// absent from the result; callers decide whether that is an error.
	GetPlayersByIDs(ctx context.Context, ids []string) ([]models.Player, error)

	// CreatePlayer persists a new player and assigns its identifier.
	CreatePlayer(ctx context.Context, p *models.Player) error

	// ListMatches returns matches with embedded participants, newest first.
	// limit <= 0 means no limit.
	ListMatches(ctx context.Context, limit int) ([]models.Match, error)

	// ListHistory returns the full ledger with embedded match participants,
	// ordered by date ascending.
	ListHistory(ctx context.Context) ([]models.HistoryWithMatch, error)

	// BeginSubmission opens the transaction that makes a match submission's
	// multi-record fan-out atomic.
	BeginSubmission(ctx context.Context) (SubmissionTx, error)
}

// SubmissionTx is the transactional boundary around steps 2-5 of a match
// submission. Either Commit persists everything or Rollback discards
// everything; a Rollback failure is what produces a PartialWriteError.
type SubmissionTx interface {
	// InsertMatch persists the match and assigns its identifier.
	InsertMatch(ctx context.Context, m *models.Match) error

	// UpdatePlayers applies the post-match stat updates. It fails if any
	// player row is missing.
	UpdatePlayers(ctx context.Context, players []models.Player) error

	// InsertHistoryEntries appends the per-participant ledger rows.
	InsertHistoryEntries(ctx context.Context, entries []models.MatchHistoryEntry) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Handler-facing service surfaces. Handlers depend on these, not on the
// concrete services, so tests can swap in mocks.

type MatchSubmitter interface {
	SubmitMatch(ctx context.Context, input models.MatchInput) (*models.SubmissionResult, error)
}

type StatsProvider interface {
	Rivalries(ctx context.Context) ([]models.Rivalry, error)
	Synergies(ctx context.Context) ([]models.Synergy, error)
	Trend(ctx context.Context, topN int) (*models.TrendResult, error)
	Summary(ctx context.Context) (*models.ClubSummary, error)
	RecentMatches(ctx context.Context, limit int) ([]models.Match, error)
}

type RosterProvider interface {
	CreatePlayer(ctx context.Context, name string) (*models.Player, error)
	Leaderboard(ctx context.Context) ([]models.Player, error)
	Balance(ctx context.Context, playerIDs []string) (*models.BalanceResult, error)
}

// StatsCache fronts the recompute-everything aggregations with a short-TTL
// snapshot. A nil cache disables caching; aggregation semantics do not
// change either way.
type StatsCache interface {
	// Get unmarshals a cached value into dest, reporting whether it existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
