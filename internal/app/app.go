package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philleif/tempcheck-api/internal/adapter/postgres"
	"github.com/philleif/tempcheck-api/internal/config"
	"github.com/philleif/tempcheck-api/internal/metrics"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("fallback", cfg.Fallback.Enabled),
	)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	pool, err := openPool(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, pool, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// openPool connects to the database. When the database is unreachable and
// fallback is enabled, the server starts in degraded mode on a lazily
// connecting pool.
func openPool(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err == nil {
		return pool, nil
	}
	if !cfg.Fallback.Enabled {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Warn("database unavailable, starting in degraded mode", slog.String("error", err.Error()))

	pool, lazyErr := postgres.NewLazyPool(ctx, cfg.Database)
	if lazyErr != nil {
		return nil, fmt.Errorf("connect database: %w", errors.Join(err, lazyErr))
	}
	return pool, nil
}
