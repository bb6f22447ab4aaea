package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	// Services
	Submission logic.MatchSubmitter
	Stats      logic.StatsProvider
	Roster     logic.RosterProvider
}

type Handler struct {
	pg         *pgxpool.Pool
	redis      *redis.Client
	logger     *zap.SugaredLogger
	submission logic.MatchSubmitter
	stats      logic.StatsProvider
	roster     logic.RosterProvider
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:         cfg.Postgres,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		submission: cfg.Submission,
		stats:      cfg.Stats,
		roster:     cfg.Roster,
	}
}
