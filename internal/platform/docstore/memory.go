// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/taibuivan/folio/pkg/uuidv7"
)

type memoryEntry struct {
	id     string
	seq    uint64
	fields map[string]any
}

// MemoryStore keeps documents in process memory. Natural order is insertion order.
//
// It backs unit tests and `STORE_DRIVER=memory` development runs; nothing
// survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         uint64
	collections map[string]map[string]*memoryEntry
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]*memoryEntry)}
}

var _ Store = (*MemoryStore)(nil)

func (store *MemoryStore) List(ctx context.Context, collection, orderBy string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("list", collection, "", err)
	}

	store.mu.RLock()
	entries := slices.Collect(maps.Values(store.collections[collection]))
	slices.SortFunc(entries, func(a, b *memoryEntry) int { return cmp.Compare(a.seq, b.seq) })

	docs := make([]Document, len(entries))
	for i, entry := range entries {
		docs[i] = Document{ID: entry.id, Fields: cloneFields(entry.fields)}
	}
	store.mu.RUnlock()

	SortDocuments(docs, orderBy)
	return docs, nil
}

func (store *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("get", collection, id, err)
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	entry, ok := store.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return &Document{ID: id, Fields: cloneFields(entry.fields)}, nil
}

func (store *MemoryStore) Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, storeError("create", collection, id, err)
	}
	if id == "" {
		id = uuidv7.New()
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	docs, ok := store.collections[collection]
	if !ok {
		docs = make(map[string]*memoryEntry)
		store.collections[collection] = docs
	}
	if _, taken := docs[id]; taken {
		return Document{}, storeError("create", collection, id, ErrAlreadyExists)
	}

	store.seq++
	docs[id] = &memoryEntry{id: id, seq: store.seq, fields: cloneFields(fields)}

	return Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (store *MemoryStore) Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, storeError("update", collection, id, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.collections[collection][id]
	if !ok {
		return Document{}, storeError("update", collection, id, ErrNotFound)
	}
	maps.Copy(entry.fields, cloneFields(patch))

	return Document{ID: id, Fields: cloneFields(entry.fields)}, nil
}

func (store *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return storeError("delete", collection, id, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.collections[collection], id)
	return nil
}

func (store *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (store *MemoryStore) Close() {}

// cloneFields deep-copies the JSON-shaped values a document can hold so
// callers never share state with the store.
func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
