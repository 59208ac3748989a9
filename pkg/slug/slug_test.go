// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/slug"
)

/*
TestFrom covers accent folding, punctuation collapsing and trimming.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Building a PDF résumé in Go!  ", "building-a-pdf-resume-in-go"},
		{"C++ & Rust: a comparison", "c-rust-a-comparison"},
		{"Tiếng Việt có dấu", "tieng-viet-co-dau"},
		{"---", ""},
		{"2024 recap", "2024-recap"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestWithSuffix checks the collision candidate sequence.
*/
func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "post", slug.WithSuffix("post", 0))
	assert.Equal(t, "post", slug.WithSuffix("post", 1))
	assert.Equal(t, "post-2", slug.WithSuffix("post", 2))
	assert.Equal(t, "post-10", slug.WithSuffix("post", 10))
}
