// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/migration"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres document-store schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return withRunner(func(runner *migration.Runner, _ *slog.Logger) error {
				return runner.Up()
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return withRunner(func(runner *migration.Runner, _ *slog.Logger) error {
				return runner.Down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(func(runner *migration.Runner, _ *slog.Logger) error {
				current, dirty, err := runner.Version()
				if err != nil {
					return err
				}
				suffix := ""
				if dirty {
					suffix = " (dirty)"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d%s\n", current, suffix)
				return err
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

// withRunner opens a migration runner for the configured database and closes it after fn.
func withRunner(fn func(*migration.Runner, *slog.Logger) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.DriverPostgres {
		return errors.New("migrations only apply to STORE_DRIVER=postgres")
	}

	runner, err := migration.New(cfg.DatabaseURL, cfg.MigrationPath, log)
	if err != nil {
		return err
	}
	defer runner.Close()

	return fn(runner, log)
}
