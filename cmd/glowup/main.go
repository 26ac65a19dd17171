// Package main is the entry point for the glowup terminal client.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/glowup-wallet/backend/config"
	"github.com/glowup-wallet/backend/internal/infra/dependency"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/cli"
)

func main() {
	_ = godotenv.Load()

	// Keep stdout for command output; logs go to stderr and only warnings show.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var container *dependency.Container
	loader := func(ctx context.Context, opts cli.Options) (*cli.App, error) {
		cfg := config.Load()
		if opts.SeedPath != "" {
			cfg.Seed.Path = opts.SeedPath
		}

		c, err := dependency.NewContainer(ctx, cfg)
		if err != nil {
			return nil, err
		}
		container = c

		return &cli.App{
			ListGoals:        c.ListGoals,
			AddFunds:         c.AddFunds,
			ListTransactions: c.ListTransactions,
			ListChallenges:   c.ListChallenges,
			Dashboard:        c.Dashboard,
			Chat:             c.Chat,
			Tip:              c.Tip,
			Theme:            cfg.Seed.Theme,
		}, nil
	}

	err := cli.NewRootCommand(loader).ExecuteContext(ctx)

	if container != nil {
		if closeErr := container.Close(); closeErr != nil {
			slog.Error("Failed to close connections", "error", closeErr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}
