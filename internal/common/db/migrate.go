package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/db/migrations"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

// gooseUp is swapped in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate applies the embedded migrations through a short-lived database/sql
// handle; pgxpool itself cannot be handed to goose.
func Migrate(ctx context.Context, log *logger.Logger, databaseURL string) error {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open database for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	log.WithFields(ctx, logger.Fields{"action": "migrations_start"}).Info("applying database migrations")
	if err := gooseUp(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	metrics.DBMigrationsApplied.Inc()
	log.WithFields(ctx, logger.Fields{
		"action":  "migrations_applied",
		"version": version,
	}).Info("database migrations applied")
	return nil
}
