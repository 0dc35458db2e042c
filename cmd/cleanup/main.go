// Command cleanup deactivates flyers whose event date has passed.
// Run it from cron; it is safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	flyerrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/flyer"
	"github.com/thepole/flyerboard-backend/internal/app"
	"github.com/thepole/flyerboard-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Flyers stay visible through their event day; only strictly past
	// dates are expired.
	cutoff := time.Now().UTC().Truncate(24 * time.Hour)

	n, err := flyerrepo.New(pool).DeactivateExpired(ctx, cutoff)
	if err != nil {
		return err
	}

	logger.Info("expired flyers deactivated", slog.Int64("count", n))
	return nil
}
