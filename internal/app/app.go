package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	contributionrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/contribution"
	flagrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/flag"
	searchlogrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/searchlog"
	useraccountrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/useraccount"
	voterepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/vote"
	wordrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/word"
	"github.com/dexai-ro/dexai-backend/internal/ai"
	"github.com/dexai-ro/dexai-backend/internal/auth"
	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/quota"
	"github.com/dexai-ro/dexai-backend/internal/service/dictionary"
	flagsvc "github.com/dexai-ro/dexai-backend/internal/service/flag"
	"github.com/dexai-ro/dexai-backend/internal/service/points"
	votesvc "github.com/dexai-ro/dexai-backend/internal/service/vote"
	"github.com/dexai-ro/dexai-backend/internal/transport/middleware"
	"github.com/dexai-ro/dexai-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// dependency graph, and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", Version),
		slog.String("environment", cfg.Environment),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	words := wordrepo.New(pool)
	votes := voterepo.New(pool)
	contributions := contributionrepo.New(pool)
	accounts := useraccountrepo.New(pool)
	flags := flagrepo.New(pool)
	searchLogs := searchlogrepo.New(pool)

	// The in-memory tracker is only correct for a single instance; any
	// horizontally scaled deployment must configure Redis.
	var tracker quota.Tracker
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		tracker = quota.NewRedis(client)
		logger.Info("quota tracker: redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		mem := quota.NewMemory(cfg.RateLimit.SweepInterval)
		defer mem.Stop()
		tracker = mem
		logger.Info("quota tracker: in-memory")
	}

	analyzer := ai.NewClient(cfg.AI, logger)

	pointsService := points.NewService(logger, contributions, accounts, txManager, cfg.Discovery)
	voteService := votesvc.NewService(logger, words, votes, txManager, tracker, cfg.Consensus, cfg.RateLimit)
	flagService := flagsvc.NewService(logger, flags, words, tracker, cfg.RateLimit)
	dictionaryService := dictionary.NewService(
		logger, words, searchLogs, analyzer, pointsService, tracker,
		cfg.Discovery, cfg.AI.Model, !cfg.IsProduction(),
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.SweepInterval)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Dictionary:  dictionaryService,
		Votes:       voteService,
		Flags:       flagService,
		Points:      pointsService,
		DB:          pool,
		Auth:        jwtManager,
		RateLimiter: rateLimiter,
		Version:     Version,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Log:         logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
