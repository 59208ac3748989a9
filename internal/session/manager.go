/*
Package session manages admin sign-in on top of an identity provider.

A [Manager] authenticates through an [identity.Provider], admits only emails
on the allow-list, and issues a signed session token backed by a stored
session record. Other components observe sign-in state through
[Manager.Subscribe] rather than polling.
*/
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/identity"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/notify"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/site"
	"github.com/taibuivan/folio/pkg/uuidv7"
)

// # Contracts & Types

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	GenerateSessionToken(sessionID, email string, timeToLive time.Duration) (string, error)
	VerifyToken(token string) (*sec.SessionClaims, error)
}

type State string

const (
	StateSignedIn  State = "signed_in"
	StateSignedOut State = "signed_out"
)

// Event is published on every sign-in state change.
type Event struct {
	State State
	Email string
	At    time.Time
}

// LoginResult tells the client what to do after a sign-in attempt. A declined
// identity is a normal result with Allowed false, not an error.
type LoginResult struct {
	Allowed         bool                 `json:"allowed"`
	Email           string               `json:"email,omitempty"`
	Token           string               `json:"token,omitempty"`
	ExpiresAt       *time.Time           `json:"expires_at,omitempty"`
	RedirectTo      string               `json:"redirect_to,omitempty"`
	RedirectAfterMS int64                `json:"redirect_after_ms,omitempty"`
	Notification    *notify.Notification `json:"notification,omitempty"`
}

type LogoutResult struct {
	RedirectTo      string               `json:"redirect_to"`
	RedirectAfterMS int64                `json:"redirect_after_ms"`
	Notification    *notify.Notification `json:"notification,omitempty"`
}

// Manager is the admin session service.
type Manager struct {
	provider identity.Provider
	tokens   TokenIssuer
	store    Store
	allow    AllowList
	notices  *notify.Center
	logger   *slog.Logger
	now      func() time.Time
	ttl      time.Duration

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(Event)
}

// NewManager wires a Manager with the default session TTL.
func NewManager(provider identity.Provider, tokens TokenIssuer, store Store, allow AllowList, notices *notify.Center, logger *slog.Logger) *Manager {
	return &Manager{
		provider:    provider,
		tokens:      tokens,
		store:       store,
		allow:       allow,
		notices:     notices,
		logger:      logger,
		now:         time.Now,
		ttl:         constants.SessionTTL,
		subscribers: make(map[int]func(Event)),
	}
}

// WithClock replaces the time source. Used by tests.
func (manager *Manager) WithClock(now func() time.Time) *Manager {
	manager.now = now
	return manager
}

// # Sign In

/*
SignIn authenticates credential and, when the identity is on the allow-list,
opens a session.

Returns:
  - *LoginResult: Allowed or declined outcome with redirect and notification
  - error: apperr.Unauthorized carrying the provider message, or store failures
*/
func (manager *Manager) SignIn(context context.Context, credential identity.Credential, returnURL string) (*LoginResult, error) {
	who, err := manager.provider.Authenticate(context, credential)
	if err != nil {
		manager.logger.WarnContext(context, "sign_in_failed", slog.String("error", err.Error()))
		return nil, apperr.Unauthorized(identity.Message(err))
	}

	if !manager.allow.Contains(who.Email) {
		if err := manager.provider.SignOut(context, *who); err != nil {
			manager.logger.WarnContext(context, "identity_sign_out_failed", slog.Any("error", err))
		}
		manager.publish(Event{State: StateSignedOut, Email: who.Email, At: manager.now()})
		manager.logger.WarnContext(context, "admin_access_denied", slog.String("email", who.Email))

		return &LoginResult{
			Allowed: false,
			Email:   who.Email,
			Notification: manager.show(who.Email,
				fmt.Sprintf("Access denied: %s is not authorized to use the dashboard.", who.Email), notify.KindWarning),
		}, nil
	}

	now := manager.now()
	record := Record{
		ID:        uuidv7.New(),
		Email:     who.Email,
		Subject:   who.Subject,
		CreatedAt: now.UTC(),
		ExpiresAt: now.Add(manager.ttl).UTC(),
	}

	token, err := manager.tokens.GenerateSessionToken(record.ID, record.Email, manager.ttl)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := manager.store.Save(context, record, manager.ttl); err != nil {
		return nil, apperr.Internal(err)
	}

	manager.publish(Event{State: StateSignedIn, Email: record.Email, At: now})
	manager.logger.InfoContext(context, "admin_signed_in", slog.String("email", record.Email), slog.String("session_id", record.ID))

	return &LoginResult{
		Allowed:         true,
		Email:           record.Email,
		Token:           token,
		ExpiresAt:       &record.ExpiresAt,
		RedirectTo:      site.ResolveReturnURL(returnURL),
		RedirectAfterMS: constants.LoginRedirectDelay.Milliseconds(),
		Notification:    manager.show(record.Email, "Signed in successfully. Welcome back!", notify.KindSuccess),
	}, nil
}

// # Session Checks

// Authorize resolves token to a live session of an allow-listed admin.
func (manager *Manager) Authorize(context context.Context, token string) (*sec.SessionClaims, error) {
	claims, err := manager.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	record, err := manager.store.Find(context, claims.SessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if record == nil || !equalEmail(record.Email, claims.Email) {
		return nil, apperr.Unauthorized("Session has ended")
	}

	// The allow-list may have shrunk since the session was opened.
	if !manager.allow.Contains(claims.Email) {
		return nil, apperr.Forbidden("This account is not allowed to use the dashboard")
	}

	return claims, nil
}

// IsAuthenticated reports whether token belongs to a live admin session.
func (manager *Manager) IsAuthenticated(context context.Context, token string) bool {
	_, err := manager.Authorize(context, token)
	return err == nil
}

// # Sign Out

// SignOut ends the session behind token. An unknown or expired token still
// signs out successfully.
func (manager *Manager) SignOut(context context.Context, token, returnURL string) (*LogoutResult, error) {
	redirect, _ := site.Path(site.PageHome, "")
	if returnURL != "" {
		redirect = site.ResolveReturnURL(returnURL)
	}

	result := &LogoutResult{
		RedirectTo:      redirect,
		RedirectAfterMS: constants.LogoutRedirectDelay.Milliseconds(),
	}

	claims, err := manager.tokens.VerifyToken(token)
	if err != nil {
		return result, nil
	}

	if err := manager.store.Delete(context, claims.SessionID); err != nil {
		return nil, apperr.Internal(err)
	}

	manager.publish(Event{State: StateSignedOut, Email: claims.Email, At: manager.now()})
	manager.logger.InfoContext(context, "admin_signed_out", slog.String("email", claims.Email), slog.String("session_id", claims.SessionID))

	result.Notification = manager.show(claims.Email, "You have been signed out.", notify.KindInfo)
	return result, nil
}

// # Subscriptions

// Subscribe registers fn for every state change until the returned function
// is called. fn runs synchronously and must not call back into the Manager's
// Subscribe.
func (manager *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	id := manager.nextID
	manager.nextID++
	manager.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			manager.mu.Lock()
			defer manager.mu.Unlock()
			delete(manager.subscribers, id)
		})
	}
}

func (manager *Manager) publish(event Event) {
	manager.mu.Lock()
	listeners := make([]func(Event), 0, len(manager.subscribers))
	for id := 0; id < manager.nextID; id++ {
		if fn, ok := manager.subscribers[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	manager.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// Notices exposes the notification center shared with the handlers.
func (manager *Manager) Notices() *notify.Center { return manager.notices }

func (manager *Manager) show(audience, message string, kind notify.Kind) *notify.Notification {
	if manager.notices == nil {
		return nil
	}
	notification, shown := manager.notices.Show(normalizeEmail(audience), message, kind)
	if !shown {
		return nil
	}
	return &notification
}

func equalEmail(a, b string) bool {
	return normalizeEmail(a) == normalizeEmail(b)
}
