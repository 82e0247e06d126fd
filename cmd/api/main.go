package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/invierteya/funds/internal/account"
	accountStore "github.com/invierteya/funds/internal/account/store"
	"github.com/invierteya/funds/internal/auth"
	"github.com/invierteya/funds/internal/config"
	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/fund"
	fundStore "github.com/invierteya/funds/internal/fund/store"
	fundsHttp "github.com/invierteya/funds/internal/http"
	authHandler "github.com/invierteya/funds/internal/http/auth"
	fundHandler "github.com/invierteya/funds/internal/http/fund"
	"github.com/invierteya/funds/internal/http/health"
	"github.com/invierteya/funds/internal/http/middleware"
	userHandler "github.com/invierteya/funds/internal/http/user"
	"github.com/invierteya/funds/internal/ledger"
	ledgerStore "github.com/invierteya/funds/internal/ledger/store"
	"github.com/invierteya/funds/internal/movement"
	movementStore "github.com/invierteya/funds/internal/movement/store"
	"github.com/invierteya/funds/internal/notification"
	notificationStore "github.com/invierteya/funds/internal/notification/store"
	"github.com/invierteya/funds/internal/subscription"
	subscriptionStore "github.com/invierteya/funds/internal/subscription/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.App.LogFormat))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	fundService := fund.NewService(fundStore.New(db))

	if cfg.App.SeedFunds {
		n, err := fundService.Seed(ctx)
		if err != nil {
			slog.Error("failed to seed funds", "error", err)
			os.Exit(1)
		}

		slog.Info("fund catalog seeded", "funds", n)
	}

	sink, closeSink := newSink(ctx, cfg)
	defer closeSink()

	dispatcher := notification.NewDispatcher(notificationStore.New(db), sink)

	var (
		tokens         = auth.NewTokens(cfg.JWT.Secret, cfg.JWT.TTL)
		accountService = account.NewService(accountStore.New(db), auth.BcryptHasher{}, cfg.Account.InitialBalance)
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		subService     = subscription.NewService(subscriptionStore.New(db))
		movements      = movement.NewService(movementStore.New(db), dispatcher, movement.Limits{
			MinDeposit:       cfg.Deposit.Min,
			MaxDeposit:       cfg.Deposit.Max,
			ConflictAttempts: cfg.Movement.ConflictAttempts,
		})
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.PruneEvery(ctx, time.Minute)

	router := fundsHttp.New(
		fundsHttp.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			SeedEndpoint:   cfg.Development(),
		},
		tokens,
		limiter,
		health.NewHandler(db, health.Info{
			Name:        cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
		}),
		authHandler.NewHandler(accountService, tokens),
		userHandler.NewHandler(accountService, ledgerService, subService, movements),
		fundHandler.NewHandler(fundService, movements),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           http.TimeoutHandler(router, cfg.Server.Timeout, "request timed out"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "environment", cfg.App.Environment)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	dispatcher.Wait()
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// newSink publishes notifications to a Redis stream when one is configured,
// and falls back to logging them otherwise.
func newSink(ctx context.Context, cfg *config.Config) (notification.Sink, func()) {
	if cfg.Redis.Addr == "" {
		slog.Info("no redis configured, notifications will be logged")
		return notification.LogSink{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}

	return notification.NewRedisSink(client, cfg.Redis.Stream), func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
}
