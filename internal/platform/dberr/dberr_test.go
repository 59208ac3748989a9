// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

/*
TestWrap verifies the mapping from store errors to HTTP-facing errors.
*/
func TestWrap(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "Project"))

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not_found", &docstore.StoreError{Op: "update", Collection: "projects", ID: "x", Err: docstore.ErrNotFound}, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", &docstore.StoreError{Op: "create", Collection: "site_config", ID: "contact_info", Err: docstore.ErrAlreadyExists}, http.StatusConflict, "CONFLICT"},
		{"backend", &docstore.StoreError{Op: "list", Collection: "projects", Err: errors.New("connection reset")}, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"passthrough", apperr.Forbidden("nope"), http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "Project"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
			assert.Equal(t, tt.code, ae.Code)
		})
	}

	assert.Equal(t, "Project not found", dberr.Wrap(docstore.ErrNotFound, "Project").Error())
}
