package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/domain/srs"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/platform/postgres"
	"github.com/flashdeck/flashdeck-api/internal/service/review"
	"github.com/flashdeck/flashdeck-api/internal/service/stats"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	deckStore store.DeckStore
	cardStore store.CardStore
	logStore  store.ReviewLogStore

	scheduler     srs.Service
	reviewService review.ReviewService
	statsService  stats.StatsService
}

// newApplication loads configuration, sets up logging, connects to the
// database, runs migrations, and wires the service graph.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return nil, err
	}

	scheduler, err := srs.NewService(schedulerSettings(cfg.Scheduler))
	if err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to build scheduler: %w", err)
	}

	deckStore := postgres.NewPostgresDeckStore(db, appLogger)
	cardStore := postgres.NewPostgresCardStore(db, appLogger)
	logStore := postgres.NewPostgresReviewLogStore(db, appLogger)
	transactor := store.NewSQLTransactor(db)

	reviewService := review.NewReviewService(
		transactor, cardStore, deckStore, logStore, scheduler, appLogger)
	statsService := stats.NewStatsService(deckStore, logStore, appLogger)

	return &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		deckStore:     deckStore,
		cardStore:     cardStore,
		logStore:      logStore,
		scheduler:     scheduler,
		reviewService: reviewService,
		statsService:  statsService,
	}, nil
}

// run starts the HTTP server and blocks until shutdown completes.
func (app *application) run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}
}

// schedulerSettings converts the scheduler config section into the
// scheduler's settings value.
func schedulerSettings(cfg config.SchedulerConfig) *srs.Settings {
	return &srs.Settings{
		LearningSteps:      cfg.LearningSteps,
		RelearningSteps:    cfg.RelearningSteps,
		GraduatingInterval: cfg.GraduatingInterval,
		EasyInterval:       cfg.EasyInterval,
		StartingEase:       cfg.StartingEase,
		MinEase:            cfg.MinEase,
		HardIntervalFactor: cfg.HardIntervalFactor,
		EasyBonus:          cfg.EasyBonus,
		UseFuzz:            cfg.UseFuzz,
		IntervalModifier:   cfg.IntervalModifier,
	}
}
