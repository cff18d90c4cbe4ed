// Package main implements the entry point for the fintrack API server, a
// personal-finance backend handling user registration/login and persistence
// of accounts, budgets, transactions and loyalty programs.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/fintrack/fintrack-api/internal/config"
	"github.com/fintrack/fintrack-api/internal/platform/logger"
	"github.com/fintrack/fintrack-api/internal/redact"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires the application together and serves HTTP
// until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	dbURL, err := cfg.Database.Resolve(cfg.Env)
	if err != nil {
		return err
	}

	appLogger.Info("configuration loaded",
		slog.String("env", cfg.Env),
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_url", redact.URL(dbURL)))

	ctx := context.Background()

	db, err := setupDatabase(ctx, dbURL, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if err := runMigrations(ctx, db, appLogger); err != nil {
		return err
	}

	app := newApplication(cfg, appLogger, db)

	return app.startHTTPServer(ctx, app.setupRouter())
}
