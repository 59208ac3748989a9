// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, ensuring consistent error handling across handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/convert"
)

// maxJSONBody caps JSON request bodies; blog content is the largest payload.
const maxJSONBody = 2 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (needed to enforce the body size limit)
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(writer, request.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (document id or slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
QueryInt reads an integer query parameter, falling back to def.
*/
func QueryInt(request *http.Request, name string, def int) int {
	return convert.ToIntD(request.URL.Query().Get(name), def)
}

/*
QueryBool reads an optional boolean query parameter; nil when absent or malformed.
*/
func QueryBool(request *http.Request, name string) *bool {
	return convert.ToBoolPtr(request.URL.Query().Get(name))
}

/*
Session returns the admin session attached by middleware.RequireAdmin.

Returns:
  - *sec.SessionClaims: The verified session
  - error: apperr.Unauthorized if the route was reached without one
*/
func Session(request *http.Request) (*sec.SessionClaims, error) {
	claims := ctxutil.GetSession(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
