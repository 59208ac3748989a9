// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package docstore is the document store shim every content entity goes through.

A document is an id plus a schema-less field map, grouped into named
collections. Three backends implement [Store]: postgres (one JSONB table),
mongo (one MongoDB collection per logical collection) and memory.

Query Model:

  - List returns a whole collection, optionally ordered by one field.
    A leading "-" on the field name means descending.
  - Filtering is equality-only and happens in memory after List, see [Filter].
  - There are no transactions and no conflict detection: the last write wins.

[Collection] layers typed entities, timestamps and failure logging on top.
*/
package docstore

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Update when the document does not exist.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrAlreadyExists is returned by Create when a fixed id is already taken.
	ErrAlreadyExists = errors.New("docstore: document already exists")
)

// Document is one stored record. Fields never contains the id.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the generic collection/document API over a hosted database.
type Store interface {
	// List returns every document in collection ordered by orderBy.
	// An empty orderBy returns the backend's natural (insertion) order.
	List(ctx context.Context, collection, orderBy string) ([]Document, error)

	// Get returns the document, or nil with a nil error when it is absent.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Create writes a new document. An empty id asks the store to assign one.
	Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error)

	// Update shallow-merges patch into the stored fields.
	Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error)

	// Delete removes the document. Deleting an absent document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close()
}

// StoreError records which operation failed against which document.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *StoreError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("docstore: %s %s: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("docstore: %s %s/%s: %v", e.Op, e.Collection, e.ID, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeError(op, collection, id string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, ID: id, Err: err}
}
