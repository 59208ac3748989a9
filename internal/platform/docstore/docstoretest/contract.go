// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package docstoretest holds the behaviour every docstore backend must share.
// Backend tests call [Run] with a factory returning an empty store.
package docstoretest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/docstore"
)

// Run exercises a store implementation. newStore must return an empty store;
// collection names are unique per subtest so a shared backend also works.
func Run(t *testing.T, newStore func(t *testing.T) docstore.Store) {
	ctx := context.Background()

	t.Run("create_then_get", func(t *testing.T) {
		store := newStore(t)

		created, err := store.Create(ctx, "c_create", "", map[string]any{"title": "Folio", "order": 1})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := store.Get(ctx, "c_create", created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Folio", got.Fields["title"])
		assert.True(t, docstore.Equal(got.Fields["order"], 1))
	})

	t.Run("get_absent_is_nil", func(t *testing.T) {
		store := newStore(t)

		got, err := store.Get(ctx, "c_absent", "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create_fixed_id_twice", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Create(ctx, "c_fixed", "contact_info", map[string]any{"email": "a@b.com"})
		require.NoError(t, err)

		_, err = store.Create(ctx, "c_fixed", "contact_info", map[string]any{"email": "c@d.com"})
		assert.True(t, errors.Is(err, docstore.ErrAlreadyExists))
	})

	t.Run("update_merges", func(t *testing.T) {
		store := newStore(t)

		created, err := store.Create(ctx, "c_update", "", map[string]any{"title": "Old", "featured": false})
		require.NoError(t, err)

		_, err = store.Update(ctx, "c_update", created.ID, map[string]any{"featured": true})
		require.NoError(t, err)

		got, err := store.Get(ctx, "c_update", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", got.Fields["title"])
		assert.Equal(t, true, got.Fields["featured"])
	})

	t.Run("update_absent", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Update(ctx, "c_update_absent", "nope", map[string]any{"x": 1})
		assert.True(t, errors.Is(err, docstore.ErrNotFound))

		var storeErr *docstore.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "update", storeErr.Op)
		assert.Equal(t, "nope", storeErr.ID)
	})

	t.Run("delete_then_get", func(t *testing.T) {
		store := newStore(t)

		created, err := store.Create(ctx, "c_delete", "", map[string]any{"name": "Go"})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "c_delete", created.ID))
		require.NoError(t, store.Delete(ctx, "c_delete", created.ID))

		got, err := store.Get(ctx, "c_delete", created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list_orders", func(t *testing.T) {
		store := newStore(t)

		for _, order := range []int{3, 1, 2} {
			_, err := store.Create(ctx, "c_order", "", map[string]any{"order": order})
			require.NoError(t, err)
		}
		_, err := store.Create(ctx, "c_order", "", map[string]any{"name": "unordered"})
		require.NoError(t, err)

		asc, err := store.List(ctx, "c_order", "order")
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, -1}, orders(asc))

		desc, err := store.List(ctx, "c_order", "-order")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 2, 1, -1}, orders(desc))

		natural, err := store.List(ctx, "c_order", "")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 2, -1}, orders(natural))
	})

	t.Run("list_ties_keep_natural_order", func(t *testing.T) {
		store := newStore(t)

		var ids []string
		for i := 0; i < 3; i++ {
			doc, err := store.Create(ctx, "c_ties", "", map[string]any{"order": 0})
			require.NoError(t, err)
			ids = append(ids, doc.ID)
		}

		docs, err := store.List(ctx, "c_ties", "-order")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		for i, doc := range docs {
			assert.Equal(t, ids[i], doc.ID)
		}
	})

	t.Run("upsert_creates_then_merges", func(t *testing.T) {
		store := newStore(t)

		_, created, err := docstore.Upsert(ctx, store, "c_site", "contact_info", map[string]any{"email": "a@b.com"})
		require.NoError(t, err)
		assert.True(t, created)

		_, created, err = docstore.Upsert(ctx, store, "c_site", "contact_info", map[string]any{"phone": "123"})
		require.NoError(t, err)
		assert.False(t, created)

		got, err := store.Get(ctx, "c_site", "contact_info")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "a@b.com", got.Fields["email"])
		assert.Equal(t, "123", got.Fields["phone"])
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}

// orders extracts the numeric order field, -1 when missing.
func orders(docs []docstore.Document) []float64 {
	out := make([]float64, len(docs))
	for i, doc := range docs {
		switch v := doc.Fields["order"].(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		case int32:
			out[i] = float64(v)
		case int64:
			out[i] = float64(v)
		default:
			out[i] = -1
		}
	}
	return out
}
