// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Store-assigned document ids, session ids and request ids all come from here.
// Being time-sortable, document ids also act as the natural-order tiebreak
// when two documents share an `order` value.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable, which is an
// unrecoverable system-level failure.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}
	return id.String()
}
