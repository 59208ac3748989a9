// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr bridges document store failures to application errors.
package dberr

import (
	"errors"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

// Wrap classifies a store error for the HTTP edge. resource names the
// entity in the client-facing message ("Project not found").
//
// Backend details stay in the cause and never reach the client.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if appErr := apperr.As(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return apperr.NotFound(resource)
	case errors.Is(err, docstore.ErrAlreadyExists):
		return apperr.Conflict(resource + " already exists")
	default:
		return apperr.Internal(err)
	}
}
