// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
)

// ParseOrder splits an order-by spec into the field name and direction.
func ParseOrder(orderBy string) (field string, desc bool) {
	if rest, ok := strings.CutPrefix(orderBy, "-"); ok {
		return rest, true
	}
	return orderBy, false
}

// SortDocuments orders docs in place by orderBy.
//
// The sort is stable, so ties keep their incoming (natural) order. Documents
// without the field sort after every document that has it, in both directions.
func SortDocuments(docs []Document, orderBy string) {
	field, desc := ParseOrder(orderBy)
	if field == "" {
		return
	}

	slices.SortStableFunc(docs, func(a, b Document) int {
		av, aok := a.Fields[field]
		bv, bok := b.Fields[field]

		switch {
		case !aok || av == nil:
			if !bok || bv == nil {
				return 0
			}
			return 1
		case !bok || bv == nil:
			return -1
		}

		c := compareValues(av, bv)
		if desc {
			return -c
		}
		return c
	})
}

// compareValues orders two field values. Values of different kinds are
// ranked by kind so the order is total.
func compareValues(a, b any) int {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}

	return cmp.Compare(kindRank(a), kindRank(b))
}

func kindRank(v any) int {
	if _, ok := toFloat(v); ok {
		return 0
	}
	switch v.(type) {
	case string:
		return 1
	case bool:
		return 2
	case []any:
		return 3
	default:
		return 4
	}
}

// toFloat normalizes every numeric representation a backend can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
