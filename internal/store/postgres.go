package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/rating-api/internal/logic"
	"github.com/courtside/rating-api/internal/models"
)

const playerColumns = "id, name, rating, matches_played, wins, streak_count, last_played_at, created_at"

// Postgres implements the core's storage contract on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Pool exposes the underlying pool for readiness checks.
func (s *Postgres) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Postgres) Close() {
	s.pool.Close()
}

func (s *Postgres) ListPlayersByRating(ctx context.Context) ([]models.Player, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+playerColumns+`
		FROM players
		ORDER BY rating DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *Postgres) GetPlayersByIDs(ctx context.Context, ids []string) ([]models.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+playerColumns+`
		FROM players
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *Postgres) CreatePlayer(ctx context.Context, p *models.Player) error {
	p.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (id, name, rating, matches_played, wins, streak_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Name, p.Rating, p.MatchesPlayed, p.Wins, p.StreakCount, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

const matchSelect = `
	SELECT m.id,
	       m.team1_player1, p11.name,
	       m.team1_player2, p12.name,
	       m.team2_player1, p21.name,
	       m.team2_player2, p22.name,
	       m.team1_score, m.team2_score, m.winner, m.created_at
	FROM matches m
	JOIN players p11 ON p11.id = m.team1_player1
	LEFT JOIN players p12 ON p12.id = m.team1_player2
	JOIN players p21 ON p21.id = m.team2_player1
	LEFT JOIN players p22 ON p22.id = m.team2_player2
`

func (s *Postgres) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	query := matchSelect + " ORDER BY m.created_at DESC, m.id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *Postgres) ListHistory(ctx context.Context) ([]models.HistoryWithMatch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT h.id, h.match_id, h.rating_before, h.rating_after, h.rating_change,
		       h.score_difference, h.is_winner, h.date,
		       m.team1_player1, p11.name,
		       m.team1_player2, p12.name,
		       m.team2_player1, p21.name,
		       m.team2_player2, p22.name
		FROM match_history h
		JOIN matches m ON m.id = h.match_id
		JOIN players p11 ON p11.id = m.team1_player1
		LEFT JOIN players p12 ON p12.id = m.team1_player2
		JOIN players p21 ON p21.id = m.team2_player1
		LEFT JOIN players p22 ON p22.id = m.team2_player2
		ORDER BY h.date ASC, h.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryWithMatch
	for rows.Next() {
		var e models.HistoryWithMatch
		var t1p1ID, t1p1Name, t2p1ID, t2p1Name string
		var t1p2ID, t1p2Name, t2p2ID, t2p2Name *string
		err := rows.Scan(&e.ID, &e.MatchID, &e.RatingBefore, &e.RatingAfter, &e.RatingChange,
			&e.ScoreDifference, &e.IsWinner, &e.Date,
			&t1p1ID, &t1p1Name, &t1p2ID, &t1p2Name,
			&t2p1ID, &t2p1Name, &t2p2ID, &t2p2Name)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		e.Participants = append(e.Participants, models.PlayerRef{ID: t1p1ID, Name: t1p1Name})
		if ref := nullableRef(t1p2ID, t1p2Name); ref != nil {
			e.Participants = append(e.Participants, *ref)
		}
		e.Participants = append(e.Participants, models.PlayerRef{ID: t2p1ID, Name: t2p1Name})
		if ref := nullableRef(t2p2ID, t2p2Name); ref != nil {
			e.Participants = append(e.Participants, *ref)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// BeginSubmission opens the transaction that fans a submission out over the
// matches, players and match_history tables.
func (s *Postgres) BeginSubmission(ctx context.Context) (logic.SubmissionTx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &submissionTx{tx: tx}, nil
}

type submissionTx struct {
	tx pgx.Tx
}

func (t *submissionTx) InsertMatch(ctx context.Context, m *models.Match) error {
	m.ID = uuid.NewString()
	_, err := t.tx.Exec(ctx, `
		INSERT INTO matches (id, team1_player1, team1_player2, team2_player1, team2_player2,
		                     team1_score, team2_score, winner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, m.ID, m.Team1Player1.ID, refID(m.Team1Player2), m.Team2Player1.ID, refID(m.Team2Player2),
		m.Team1Score, m.Team2Score, string(m.Winner), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (t *submissionTx) UpdatePlayers(ctx context.Context, players []models.Player) error {
	batch := &pgx.Batch{}
	for _, p := range players {
		batch.Queue(`
			UPDATE players
			SET rating = $2, matches_played = $3, wins = $4, streak_count = $5, last_played_at = $6
			WHERE id = $1
		`, p.ID, p.Rating, p.MatchesPlayed, p.Wins, p.StreakCount, p.LastPlayedAt)
	}

	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()
	for _, p := range players {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("update player %s: %w", p.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update player %s: no row", p.ID)
		}
	}
	return nil
}

func (t *submissionTx) InsertHistoryEntries(ctx context.Context, entries []models.MatchHistoryEntry) error {
	batch := &pgx.Batch{}
	for i := range entries {
		entries[i].ID = uuid.NewString()
		e := entries[i]
		batch.Queue(`
			INSERT INTO match_history (id, match_id, rating_before, rating_after, rating_change,
			                           score_difference, is_winner, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, e.ID, e.MatchID, e.RatingBefore, e.RatingAfter, e.RatingChange,
			e.ScoreDifference, e.IsWinner, e.Date)
	}

	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}
	}
	return nil
}

func (t *submissionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *submissionTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	// A transaction already torn down by a failed commit is fully rolled
	// back on the server; that is not a partial write.
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func scanPlayers(rows pgx.Rows) ([]models.Player, error) {
	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Rating, &p.MatchesPlayed, &p.Wins,
			&p.StreakCount, &p.LastPlayedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func scanMatch(rows pgx.Rows) (models.Match, error) {
	var m models.Match
	var t1p2ID, t1p2Name, t2p2ID, t2p2Name *string
	var winner string
	err := rows.Scan(&m.ID,
		&m.Team1Player1.ID, &m.Team1Player1.Name,
		&t1p2ID, &t1p2Name,
		&m.Team2Player1.ID, &m.Team2Player1.Name,
		&t2p2ID, &t2p2Name,
		&m.Team1Score, &m.Team2Score, &winner, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Winner = models.Winner(winner)
	m.Team1Player2 = nullableRef(t1p2ID, t1p2Name)
	m.Team2Player2 = nullableRef(t2p2ID, t2p2Name)
	return m, nil
}

func nullableRef(id, name *string) *models.PlayerRef {
	if id == nil {
		return nil
	}
	ref := models.PlayerRef{ID: *id}
	if name != nil {
		ref.Name = *name
	}
	return &ref
}

func refID(ref *models.PlayerRef) *string {
	if ref == nil {
		return nil
	}
	return &ref.ID
}
