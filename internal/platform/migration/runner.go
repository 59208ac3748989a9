// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration wraps golang-migrate for the postgres document store schema.
//
// `folio serve` applies pending migrations before accepting traffic when the
// postgres driver is selected; `folio migrate` exposes up, down and version.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Runner applies migrations from one directory against one database.
type Runner struct {
	migrator *migrate.Migrate
	logger   *slog.Logger
}

// New opens a migration runner. Close must be called when done.
//
// # Parameters
//   - dsn: A postgres:// or postgresql:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func New(dsn, migrationsPath string, logger *slog.Logger) (*Runner, error) {
	migrator, err := migrate.New("file://"+migrationsPath, toPgx5DSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	migrator.Log = &migrateLogger{logger: logger}

	return &Runner{migrator: migrator, logger: logger}, nil
}

// Close releases the source and database handles.
func (runner *Runner) Close() {
	sourceError, dbError := runner.migrator.Close()
	if sourceError != nil {
		runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		runner.logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// Version reports the applied version; 0 means no migration has run.
func (runner *Runner) Version() (uint, bool, error) {
	version, dirty, err := runner.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return version, dirty, nil
}

// Up applies all pending migrations.
func (runner *Runner) Up() error {
	from, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", from)
	}

	runner.logger.Info("migration_started", slog.Int("current_version", int(from)))

	if err := runner.migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	to, _, _ := runner.Version()
	runner.logger.Info("migration_successful",
		slog.Int("from_version", int(from)),
		slog.Int("to_version", int(to)),
	)
	return nil
}

// Down rolls back the given number of migrations.
func (runner *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}
	if err := runner.migrator.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: down failed: %w", err)
	}

	version, _, _ := runner.Version()
	runner.logger.Info("migration_rolled_back", slog.Int("steps", steps), slog.Int("to_version", int(version)))
	return nil
}

// RunUp is the one-shot form used at server startup.
func RunUp(dsn, migrationsPath string, logger *slog.Logger) error {
	runner, err := New(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	return runner.Up()
}

// toPgx5DSN rewrites the scheme to the pgx5:// form golang-migrate expects.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
