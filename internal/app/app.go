// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openclaw/lifeos-server/internal/adapter/postgres"
	"github.com/openclaw/lifeos-server/internal/adapter/postgres/mirror"
	"github.com/openclaw/lifeos-server/internal/config"
	"github.com/openclaw/lifeos-server/internal/memory"
	"github.com/openclaw/lifeos-server/internal/service/activity"
	"github.com/openclaw/lifeos-server/internal/service/finance"
	"github.com/openclaw/lifeos-server/internal/service/snapshot"
	"github.com/openclaw/lifeos-server/internal/service/tracker"
	"github.com/openclaw/lifeos-server/internal/store"
	"github.com/openclaw/lifeos-server/internal/transport/middleware"
	"github.com/openclaw/lifeos-server/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the file
// store and memory journal, optionally connects the relational mirror, wires
// the services behind the REST router, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("data_dir", cfg.Storage.DataDir),
		slog.Bool("mirror_enabled", cfg.Database.MirrorEnabled()),
	)

	st, err := store.Open(cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	journal := memory.NewJournal(cfg.Storage.MemoryDir)

	var (
		activityMirror activity.Mirror
		trackerMirror  tracker.Mirror
	)
	deps := rest.RouterDeps{
		Storage:            st,
		Version:            BuildVersion(),
		Log:                logger,
		CORS:               cfg.CORS,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}

	if cfg.Database.MirrorEnabled() {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate mirror: %w", err)
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect mirror: %w", err)
		}
		defer pool.Close()

		repo := mirror.New(pool)
		activityMirror = repo
		trackerMirror = repo
		deps.Mirror = pool
	}

	activitySvc := activity.NewService(logger, st.Activity, journal, activityMirror, cfg.Activity.ReadLimit)
	deps.Tracker = tracker.NewService(logger, st, activitySvc, trackerMirror)
	deps.Finance = finance.NewService(logger, st.Ledger, activitySvc)
	deps.Snapshot = snapshot.NewService(logger, st)
	deps.Activity = activitySvc
	deps.Journal = journal

	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		deps.Limiter = limiter
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(deps),
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
