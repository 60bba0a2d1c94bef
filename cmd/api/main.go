// Package main is the entry point for the Finance Dashboard API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Finance Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Database migrations completed successfully")

	inj, err := dependency.NewInjector(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer func() {
		if err := inj.Close(); err != nil {
			slog.Warn("Failed to close cache connection", "error", err)
		}
	}()

	engine := inj.Router.Setup(router.Options{
		Environment:  cfg.Server.Environment,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Background loops stop with ctx; the database stays open until they return.
	var loops errgroup.Group
	if inj.EmailWorker != nil {
		loops.Go(func() error { inj.EmailWorker.Start(ctx); return nil })
	}
	if inj.LoginRateLimiter != nil {
		loops.Go(func() error { inj.LoginRateLimiter.RunCleanup(ctx); return nil })
	}
	loops.Go(func() error { inj.SessionJanitor.Run(ctx); return nil })
	defer func() { _ = loops.Wait() }()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
