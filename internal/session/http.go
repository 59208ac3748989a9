package session

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/identity"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/notify"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type Handler struct {
	manager      *Manager
	requireAdmin func(http.Handler) http.Handler
	secure       bool
}

// NewHandler wires the auth routes. secureCookies should be false only in
// development, where the site runs over plain http.
func NewHandler(manager *Manager, requireAdmin func(http.Handler) http.Handler, secureCookies bool) *Handler {
	return &Handler{manager: manager, requireAdmin: requireAdmin, secure: secureCookies}
}

type loginInput struct {
	identity.Credential
	ReturnURL string `json:"return_url"`
}

type logoutInput struct {
	ReturnURL string `json:"return_url"`
}

// SessionStatus answers "am I signed in?" for the client.
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// RegisterRoutes mounts the auth API.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.status)
	identity.RegisterRoutes(router)

	router.With(handler.requireAdmin).Get("/notifications", handler.notifications)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.manager.SignIn(request.Context(), input.Credential, input.ReturnURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.Allowed {
		handler.setCookie(writer, result.Token, *result.ExpiresAt)
	}
	respond.OK(writer, result)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input logoutInput
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	result, err := handler.manager.SignOut(request.Context(), middleware.SessionToken(request), input.ReturnURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearCookie(writer)
	respond.OK(writer, result)
}

func (handler *Handler) status(writer http.ResponseWriter, request *http.Request) {
	token := middleware.SessionToken(request)
	if token == "" {
		respond.OK(writer, SessionStatus{})
		return
	}

	claims, err := handler.manager.Authorize(request.Context(), token)
	if err != nil {
		respond.OK(writer, SessionStatus{})
		return
	}
	respond.OK(writer, SessionStatus{Authenticated: true, Email: claims.Email})
}

func (handler *Handler) notifications(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.Session(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pending := []notify.Notification{}
	if notices := handler.manager.Notices(); notices != nil {
		pending = notices.Drain(normalizeEmail(claims.Email))
	}
	respond.OK(writer, pending)
}

// # Cookies

func (handler *Handler) setCookie(writer http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
