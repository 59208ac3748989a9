// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
)

// Upsert writes patch to the document with a fixed, well-known id, creating it
// when it does not exist yet and merging into it otherwise.
//
// Singleton documents (site settings) are written exclusively through Upsert.
// If a concurrent writer creates the document between the existence check and
// the create, the create's conflict is resolved by merging instead.
func Upsert(ctx context.Context, store Store, collection, id string, patch map[string]any) (Document, bool, error) {
	existing, err := store.Get(ctx, collection, id)
	if err != nil {
		return Document{}, false, err
	}

	if existing != nil {
		doc, err := store.Update(ctx, collection, id, patch)
		return doc, false, err
	}

	doc, err := store.Create(ctx, collection, id, patch)
	if errors.Is(err, ErrAlreadyExists) {
		doc, err = store.Update(ctx, collection, id, patch)
		return doc, false, err
	}
	return doc, err == nil, err
}
