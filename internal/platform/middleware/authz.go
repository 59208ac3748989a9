// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// SessionAuthorizer resolves a session token to the admin it belongs to.
//
// The session manager implements it. Defining it here keeps the middleware
// free of Redis and identity provider details, and lets tests inject a fake.
type SessionAuthorizer interface {
	Authorize(ctx context.Context, token string) (*sec.SessionClaims, error)
}

// SessionToken extracts the session token from the Authorization header or,
// failing that, the session cookie. It returns "" when neither is present.
func SessionToken(request *http.Request) string {
	if header := request.Header.Get(constants.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireAdmin blocks requests that do not carry a live, allow-listed session.
//
// # Flow
//  1. Extract the token via [SessionToken].
//  2. Ask the [SessionAuthorizer] whether it is still valid.
//  3. Inject [*sec.SessionClaims] into the request context for downstream use.
func RequireAdmin(authorizer SessionAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := SessionToken(request)
			if token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			claims, err := authorizer.Authorize(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			if holder, ok := request.Context().Value(sessionHolderKey{}).(*sessionHolder); ok {
				holder.email = claims.Email
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
