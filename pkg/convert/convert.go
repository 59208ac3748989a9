// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Malformed values fall back to a default instead of failing the request,
so `?limit=abc` behaves like no limit at all.
*/
package convert

import (
	"strconv"

	"github.com/taibuivan/folio/pkg/pointer"
)

// ToIntD converts a string to an int, returning def when it is empty or malformed.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToBoolPtr parses a boolean string ("true", "1", "false", "0"). It returns
// nil when the parameter is absent or malformed, for optional filters such as
// `?featured=`.
func ToBoolPtr(s string) *bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return pointer.To(v)
}
