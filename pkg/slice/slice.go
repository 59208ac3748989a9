// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the functional
helpers (Map, Filter, GroupBy) used when reshaping entity lists.
*/
package slice

// Map transforms every element of input. A nil input yields nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter keeps the elements for which predicate is true, preserving order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// GroupBy buckets input by key, preserving the relative order inside each bucket.
func GroupBy[T any, K comparable](input []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range input {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}
