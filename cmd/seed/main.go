package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/invierteya/funds/internal/config"
	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/fund"
	fundStore "github.com/invierteya/funds/internal/fund/store"
)

// seed applies migrations and writes the default fund catalog, then exits.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	n, err := fund.NewService(fundStore.New(db)).Seed(ctx)
	if err != nil {
		slog.Error("failed to seed funds", "error", err)
		os.Exit(1)
	}

	slog.Info("fund catalog seeded", "funds", n)
}
