// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package docstore_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/internal/platform/docstore/docstoretest"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgpool "github.com/taibuivan/folio/internal/platform/postgres"
)

/*
TestPostgresStore_Contract runs the shared backend behaviour against a
throwaway PostgreSQL container migrated with the real schema.
*/
func TestPostgresStore_Contract(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("folio"),
		postgres.WithUsername("folio"),
		postgres.WithPassword("folio"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrations, err := filepath.Abs("../../../data/migrations")
	require.NoError(t, err)
	require.NoError(t, migration.RunUp(dsn, migrations, logger))

	pool, err := pgpool.NewPool(ctx, dsn, logger)
	require.NoError(t, err)

	store := docstore.NewPostgresStore(pool)
	t.Cleanup(store.Close)

	docstoretest.Run(t, func(t *testing.T) docstore.Store { return store })
}
