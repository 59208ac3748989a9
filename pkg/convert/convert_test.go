// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/convert"
)

/*
TestToIntD falls back to the default on empty or malformed input.
*/
func TestToIntD(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"12", 5, 12},
		{"", 5, 5},
		{"abc", 5, 5},
		{"-3", 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntD(tt.in, tt.def))
		})
	}
}

/*
TestToBoolPtr distinguishes an absent filter from an explicit false.
*/
func TestToBoolPtr(t *testing.T) {
	tests := []struct {
		in   string
		want *bool
	}{
		{"true", func() *bool { v := true; return &v }()},
		{"1", func() *bool { v := true; return &v }()},
		{"false", func() *bool { v := false; return &v }()},
		{"0", func() *bool { v := false; return &v }()},
		{"", nil},
		{"maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToBoolPtr(tt.in))
		})
	}
}
