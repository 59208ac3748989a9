// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/docstore"
)

func docs(values ...any) []docstore.Document {
	out := make([]docstore.Document, len(values))
	for i, v := range values {
		fields := map[string]any{"seq": i}
		if v != nil {
			fields["v"] = v
		}
		out[i] = docstore.Document{ID: string(rune('a' + i)), Fields: fields}
	}
	return out
}

func ids(list []docstore.Document) string {
	out := ""
	for _, doc := range list {
		out += doc.ID
	}
	return out
}

/*
TestParseOrder covers the direction prefix.
*/
func TestParseOrder(t *testing.T) {
	field, desc := docstore.ParseOrder("-order")
	assert.Equal(t, "order", field)
	assert.True(t, desc)

	field, desc = docstore.ParseOrder("created_date")
	assert.Equal(t, "created_date", field)
	assert.False(t, desc)

	field, _ = docstore.ParseOrder("")
	assert.Empty(t, field)
}

/*
TestSortDocuments covers direction, mixed numeric types, missing fields and ties.
*/
func TestSortDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   []docstore.Document
		orderBy string
		want    string
	}{
		{"ascending", docs(3, 1, 2), "v", "bca"},
		{"descending", docs(3, 1, 2), "-v", "acb"},
		{"mixed_numeric_types", docs(int64(3), 1.5, int32(2)), "v", "bca"},
		{"strings", docs("b", "a", "c"), "v", "bac"},
		{"missing_last_asc", docs(nil, 2, 1), "v", "cba"},
		{"missing_last_desc", docs(nil, 1, 2), "-v", "cba"},
		{"ties_stable", docs(1, 1, 0, 1), "-v", "abdc"},
		{"empty_order_keeps_input", docs(3, 1, 2), "", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docstore.SortDocuments(tt.input, tt.orderBy)
			assert.Equal(t, tt.want, ids(tt.input))
		})
	}
}
