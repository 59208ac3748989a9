// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"reflect"
)

// Filter keeps the documents whose fields equal every criterion, preserving
// the incoming order, and truncates to limit. A limit <= 0 keeps every match.
//
// Numbers compare by value whatever their Go type, so a criterion of int 3
// matches a stored float64 3.
func Filter(docs []Document, criteria map[string]any, limit int) []Document {
	matched := make([]Document, 0, len(docs))

	for _, doc := range docs {
		if !matches(doc, criteria) {
			continue
		}
		matched = append(matched, doc)
		if limit > 0 && len(matched) == limit {
			break
		}
	}

	return matched
}

// ListFiltered fetches the ordered collection and applies [Filter] to it.
func ListFiltered(ctx context.Context, store Store, collection string, criteria map[string]any, orderBy string, limit int) ([]Document, error) {
	docs, err := store.List(ctx, collection, orderBy)
	if err != nil {
		return nil, err
	}
	return Filter(docs, criteria, limit), nil
}

func matches(doc Document, criteria map[string]any) bool {
	for field, want := range criteria {
		got, ok := doc.Fields[field]
		if !ok || !Equal(got, want) {
			return false
		}
	}
	return true
}

// Equal reports whether two field values are equal, normalizing numbers.
func Equal(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}
