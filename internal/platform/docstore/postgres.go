// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/pkg/uuidv7"
)

// uniqueViolation is the SQLSTATE for a duplicate primary key.
const uniqueViolation = "23505"

// PostgresStore keeps every collection in the `documents` table, one JSONB
// value per document. Natural order is (created_at, id).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool. The schema comes from data/migrations.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var _ Store = (*PostgresStore)(nil)

func (repository *PostgresStore) List(ctx context.Context, collection, orderBy string) ([]Document, error) {
	field, desc := ParseOrder(orderBy)

	query := `SELECT id, data FROM documents WHERE collection = $1 ORDER BY created_at, id`
	args := []any{collection}

	if field != "" {
		direction := "ASC"
		if desc {
			direction = "DESC"
		}
		// Missing fields and JSON nulls become SQL NULL and go last either way.
		query = fmt.Sprintf(`
			SELECT id, data FROM documents
			WHERE collection = $1
			ORDER BY NULLIF(data -> $2, 'null'::jsonb) %s NULLS LAST, created_at, id`, direction)
		args = append(args, field)
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list", collection, "", err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Document, error) {
		var doc Document
		err := row.Scan(&doc.ID, &doc.Fields)
		return doc, err
	})
	if err != nil {
		return nil, storeError("list", collection, "", err)
	}

	return docs, nil
}

func (repository *PostgresStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	doc := Document{ID: id}

	err := repository.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&doc.Fields)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get", collection, id, err)
	}

	return &doc, nil
}

func (repository *PostgresStore) Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error) {
	if id == "" {
		id = uuidv7.New()
	}
	if fields == nil {
		fields = map[string]any{}
	}

	doc := Document{ID: id}
	err := repository.pool.QueryRow(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3) RETURNING data`,
		collection, id, fields,
	).Scan(&doc.Fields)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Document{}, storeError("create", collection, id, ErrAlreadyExists)
	}
	if err != nil {
		return Document{}, storeError("create", collection, id, err)
	}

	return doc, nil
}

func (repository *PostgresStore) Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error) {
	if patch == nil {
		patch = map[string]any{}
	}

	doc := Document{ID: id}
	// jsonb || replaces top-level keys, which is exactly a shallow merge.
	err := repository.pool.QueryRow(ctx, `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
		RETURNING data`,
		collection, id, patch,
	).Scan(&doc.Fields)

	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, storeError("update", collection, id, ErrNotFound)
	}
	if err != nil {
		return Document{}, storeError("update", collection, id, err)
	}

	return doc, nil
}

func (repository *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	_, err := repository.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	return storeError("delete", collection, id, err)
}

func (repository *PostgresStore) Ping(ctx context.Context) error {
	return repository.pool.Ping(ctx)
}

func (repository *PostgresStore) Close() {
	repository.pool.Close()
}
