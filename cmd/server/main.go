package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/config"
	"github.com/courtside/rating-api/internal/handlers"
	"github.com/courtside/rating-api/internal/logic"
	"github.com/courtside/rating-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := run(cfg, logger, sugar); err != nil {
		sugar.Fatalw("Server exited with error", "error", err)
	}
}

func run(cfg *config.Config, logger *zap.Logger, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.Migrate(cfg.PostgresURL); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	sugar.Infow("Migrations applied")

	pg, err := store.NewPostgres(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer pg.Close()

	var (
		redisClient *redis.Client
		statsCache  logic.StatsCache
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parsing redis url: %w", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer redisClient.Close()
		statsCache = store.NewRedisCache(redisClient)
		sugar.Infow("Stats cache enabled", "ttl", cfg.StatsCacheTTL)
	} else {
		sugar.Infow("No Redis configured, stats recompute on every request")
	}

	engine := logic.NewEngine(cfg.KFactor)
	h := handlers.New(handlers.Config{
		Postgres:   pg.Pool(),
		Redis:      redisClient,
		Logger:     logger,
		Submission: logic.NewSubmissionService(pg, engine, cfg.MaxScore, logger),
		Stats:      logic.NewStatsService(pg, statsCache, cfg.StatsCacheTTL, logger),
		Roster:     logic.NewRosterService(pg, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
