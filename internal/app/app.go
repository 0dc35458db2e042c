package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	categoryrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/category"
	flyerrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/flyer"
	profilerepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/profile"
	savedrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/saved"
	"github.com/thepole/flyerboard-backend/internal/auth"
	"github.com/thepole/flyerboard-backend/internal/config"
	"github.com/thepole/flyerboard-backend/internal/service/feed"
	"github.com/thepole/flyerboard-backend/internal/service/saved"
	"github.com/thepole/flyerboard-backend/internal/service/swipe"
	"github.com/thepole/flyerboard-backend/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, initializes
// the logger and database, wires repositories and services, and serves
// HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	flyers := flyerrepo.New(pool)
	categories := categoryrepo.New(pool)
	savedEdges := savedrepo.New(pool)
	profiles := profilerepo.New(pool)

	feedSvc := feed.NewService(logger, flyers, savedEdges, profiles, categories, cfg.Feed)
	swipeSvc := swipe.NewService(logger, feedSvc, feedSvc, savedEdges, cfg.Feed)
	savedSvc := saved.NewService(logger, savedEdges)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(logger, cfg.CORS, verifier, rest.RouterDeps{
		Feed:     rest.NewFeedHandler(feedSvc, logger),
		Swipe:    rest.NewSwipeHandler(swipeSvc, logger),
		Saved:    rest.NewSavedHandler(savedSvc, logger),
		Calendar: rest.NewCalendarHandler(feedSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
