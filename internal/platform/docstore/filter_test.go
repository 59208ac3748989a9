// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/docstore"
)

/*
TestFilter covers conjunction, numeric normalization, limit and order preservation.
*/
func TestFilter(t *testing.T) {
	input := []docstore.Document{
		{ID: "a", Fields: map[string]any{"featured": true, "order": 5.0, "category": "backend"}},
		{ID: "b", Fields: map[string]any{"featured": false, "order": 4.0, "category": "backend"}},
		{ID: "c", Fields: map[string]any{"featured": true, "order": 3.0, "category": "frontend"}},
		{ID: "d", Fields: map[string]any{"featured": true, "order": 2.0}},
	}

	tests := []struct {
		name     string
		criteria map[string]any
		limit    int
		want     string
	}{
		{"single", map[string]any{"featured": true}, 0, "acd"},
		{"conjunction", map[string]any{"featured": true, "category": "backend"}, 0, "a"},
		{"numeric_int_matches_float", map[string]any{"order": 3}, 0, "c"},
		{"limit", map[string]any{"featured": true}, 2, "ac"},
		{"limit_above_matches", map[string]any{"featured": true}, 10, "acd"},
		{"missing_field_never_matches", map[string]any{"category": nil}, 0, ""},
		{"no_criteria", nil, 0, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(docstore.Filter(input, tt.criteria, tt.limit)))
		})
	}
}

/*
TestEqual checks value equality across numeric representations.
*/
func TestEqual(t *testing.T) {
	assert.True(t, docstore.Equal(int32(7), 7.0))
	assert.True(t, docstore.Equal("x", "x"))
	assert.True(t, docstore.Equal([]any{"go"}, []any{"go"}))
	assert.False(t, docstore.Equal(1, "1"))
	assert.False(t, docstore.Equal(true, 1))
}
