// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/platform/ctxutil"
)

// Field names stamped by [Collection].
const (
	FieldID          = "id"
	FieldCreatedDate = "created_date"
	FieldUpdatedDate = "updated_date"
)

// Clock supplies the current time. Tests pin it.
type Clock func() time.Time

// Patcher lets a patch type build its own field map, for patches that must
// express things plain omitempty JSON cannot (such as clearing a field).
type Patcher interface {
	PatchFields() (map[string]any, error)
}

// DeleteResult is what a delete reports back.
type DeleteResult struct {
	ID string `json:"id"`
}

// Collection is a typed façade over one collection of a [Store].
//
// T is converted to and from documents through its JSON form; its `id`
// field carries the document id. Every failure is logged as
// store_operation_failed and returned unchanged.
type Collection[T any] struct {
	store  Store
	name   string
	logger *slog.Logger
	now    Clock
}

// NewCollection binds a typed collection. A nil clock means time.Now.
func NewCollection[T any](store Store, name string, logger *slog.Logger, clock Clock) *Collection[T] {
	if clock == nil {
		clock = time.Now
	}
	return &Collection[T]{store: store, name: name, logger: logger, now: clock}
}

// Name is the underlying collection name.
func (collection *Collection[T]) Name() string { return collection.name }

// Now returns the collection clock's current time at stored precision.
func (collection *Collection[T]) Now() Timestamp { return NewTimestamp(collection.now()) }

// List returns every entity ordered by orderBy.
func (collection *Collection[T]) List(ctx context.Context, orderBy string) ([]T, error) {
	docs, err := collection.store.List(ctx, collection.name, orderBy)
	if err != nil {
		return nil, collection.fail(ctx, "list", "", err)
	}
	return collection.decodeAll(ctx, docs)
}

// Filter returns the entities matching every criterion, ordered by orderBy and
// truncated to limit (limit <= 0 keeps all).
func (collection *Collection[T]) Filter(ctx context.Context, criteria map[string]any, orderBy string, limit int) ([]T, error) {
	docs, err := ListFiltered(ctx, collection.store, collection.name, criteria, orderBy, limit)
	if err != nil {
		return nil, collection.fail(ctx, "filter", "", err)
	}
	return collection.decodeAll(ctx, docs)
}

// Get returns the entity, or nil when absent.
func (collection *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := collection.store.Get(ctx, collection.name, id)
	if err != nil {
		return nil, collection.fail(ctx, "get", id, err)
	}
	if doc == nil {
		return nil, nil
	}

	entity, err := decode[T](*doc)
	if err != nil {
		return nil, collection.fail(ctx, "get", id, err)
	}
	return &entity, nil
}

// Create stores data under a new id, stamping created_date and updated_date.
func (collection *Collection[T]) Create(ctx context.Context, data T) (T, error) {
	return collection.CreateWithID(ctx, "", data)
}

// CreateWithID is [Collection.Create] with a caller-chosen id.
func (collection *Collection[T]) CreateWithID(ctx context.Context, id string, data T) (T, error) {
	var zero T

	fields, err := toFields(data)
	if err != nil {
		return zero, collection.fail(ctx, "create", id, err)
	}
	delete(fields, FieldID)

	now := collection.Now().String()
	fields[FieldCreatedDate] = now
	fields[FieldUpdatedDate] = now

	doc, err := collection.store.Create(ctx, collection.name, id, fields)
	if err != nil {
		return zero, collection.fail(ctx, "create", id, err)
	}

	entity, err := decode[T](doc)
	if err != nil {
		return zero, collection.fail(ctx, "create", doc.ID, err)
	}
	return entity, nil
}

// Update merges the set fields of patch into the entity and stamps updated_date.
// patch is a struct of optional fields or a [Patcher].
func (collection *Collection[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	fields, err := PatchFields(patch)
	if err != nil {
		var zero T
		return zero, collection.fail(ctx, "update", id, err)
	}
	fields[FieldUpdatedDate] = collection.Now().String()

	return collection.merge(ctx, "update", id, fields)
}

// Touch merges patch like [Collection.Update] but leaves updated_date alone.
// It is for bookkeeping fields such as view counters, not content edits.
func (collection *Collection[T]) Touch(ctx context.Context, id string, patch any) (T, error) {
	fields, err := PatchFields(patch)
	if err != nil {
		var zero T
		return zero, collection.fail(ctx, "touch", id, err)
	}

	return collection.merge(ctx, "touch", id, fields)
}

func (collection *Collection[T]) merge(ctx context.Context, op, id string, fields map[string]any) (T, error) {
	var zero T

	doc, err := collection.store.Update(ctx, collection.name, id, fields)
	if err != nil {
		return zero, collection.fail(ctx, op, id, err)
	}

	entity, err := decode[T](doc)
	if err != nil {
		return zero, collection.fail(ctx, op, id, err)
	}
	return entity, nil
}

// Delete removes the entity. There is no cascade to other collections.
func (collection *Collection[T]) Delete(ctx context.Context, id string) (DeleteResult, error) {
	if err := collection.store.Delete(ctx, collection.name, id); err != nil {
		return DeleteResult{}, collection.fail(ctx, "delete", id, err)
	}
	return DeleteResult{ID: id}, nil
}

// Upsert writes patch to the fixed-id document, creating it when absent.
// It reports whether the document was created.
func (collection *Collection[T]) Upsert(ctx context.Context, id string, patch any) (T, bool, error) {
	var zero T

	fields, err := PatchFields(patch)
	if err != nil {
		return zero, false, collection.fail(ctx, "upsert", id, err)
	}

	doc, created, err := Upsert(ctx, collection.store, collection.name, id, fields)
	if err != nil {
		return zero, false, collection.fail(ctx, "upsert", id, err)
	}

	entity, err := decode[T](doc)
	if err != nil {
		return zero, false, collection.fail(ctx, "upsert", id, err)
	}
	return entity, created, nil
}

func (collection *Collection[T]) decodeAll(ctx context.Context, docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		entity, err := decode[T](doc)
		if err != nil {
			return nil, collection.fail(ctx, "decode", doc.ID, err)
		}
		out = append(out, entity)
	}
	return out, nil
}

// fail logs a store failure and returns it as a [StoreError].
func (collection *Collection[T]) fail(ctx context.Context, op, id string, err error) error {
	collection.logger.ErrorContext(ctx, "store_operation_failed",
		slog.String("op", op),
		slog.String("collection", collection.name),
		slog.String("id", id),
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.Any("error", err),
	)

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Collection: collection.name, ID: id, Err: err}
}

// PatchFields converts a patch value into the field map to merge.
func PatchFields(patch any) (map[string]any, error) {
	switch p := patch.(type) {
	case nil:
		return map[string]any{}, nil
	case Patcher:
		fields, err := p.PatchFields()
		if fields == nil {
			fields = map[string]any{}
		}
		return fields, err
	case map[string]any:
		return cloneFields(p), nil
	default:
		fields, err := toFields(patch)
		if err != nil {
			return nil, err
		}
		delete(fields, FieldID)
		return fields, nil
	}
}

func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode fields: %w", err)
	}

	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("docstore: encode fields: %w", err)
	}
	return fields, nil
}

func decode[T any](doc Document) (T, error) {
	var entity T

	fields := make(map[string]any, len(doc.Fields)+1)
	for k, v := range doc.Fields {
		fields[k] = v
	}
	fields[FieldID] = doc.ID

	raw, err := json.Marshal(fields)
	if err != nil {
		return entity, fmt.Errorf("docstore: decode %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, &entity); err != nil {
		return entity, fmt.Errorf("docstore: decode %s: %w", doc.ID, err)
	}
	return entity, nil
}
