package session_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/identity"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/notify"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/session"
)

// fakeProvider trusts the credential's email and records sign-outs.
type fakeProvider struct {
	err      error
	signOuts []string
}

func (provider *fakeProvider) Authenticate(_ context.Context, credential identity.Credential) (*identity.Identity, error) {
	if provider.err != nil {
		return nil, provider.err
	}
	return &identity.Identity{Subject: "sub-" + credential.Email, Email: credential.Email}, nil
}

func (provider *fakeProvider) SignOut(_ context.Context, who identity.Identity) error {
	provider.signOuts = append(provider.signOuts, who.Email)
	return nil
}

type fixture struct {
	manager  *session.Manager
	provider *fakeProvider
	store    *session.MemoryStore
	now      *time.Time
}

func newFixture(t *testing.T, admins ...string) *fixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	provider := &fakeProvider{}
	store := session.NewMemoryStore(clock)
	manager := session.NewManager(
		provider,
		sec.NewTokenServiceFromKeys(key, &key.PublicKey, "folio.test"),
		store,
		session.NewAllowList(admins),
		notify.NewCenter(notify.WithClock(clock)),
		slog.New(slog.DiscardHandler),
	).WithClock(clock)

	return &fixture{manager: manager, provider: provider, store: store, now: &now}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

/*
TestManager_SignInAllowed verifies an allow-listed admin gets a working
session, a success notice and the return redirect.
*/
func TestManager_SignInAllowed(t *testing.T) {
	fx := newFixture(t, "Owner@Folio.dev")
	ctx := context.Background()

	var events []session.Event
	unsubscribe := fx.manager.Subscribe(func(event session.Event) { events = append(events, event) })
	defer unsubscribe()

	result, err := fx.manager.SignIn(ctx, identity.Credential{Email: "owner@folio.dev"}, "/admin/messages")
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "/admin/messages", result.RedirectTo)
	assert.Equal(t, int64(1500), result.RedirectAfterMS)
	require.NotNil(t, result.Notification)
	assert.Equal(t, notify.KindSuccess, result.Notification.Kind)

	assert.True(t, fx.manager.IsAuthenticated(ctx, result.Token))
	require.Len(t, events, 1)
	assert.Equal(t, session.StateSignedIn, events[0].State)
}

/*
TestManager_SignInDenied verifies a non-admin identity is signed back out of
the provider and never gets a token.
*/
func TestManager_SignInDenied(t *testing.T) {
	fx := newFixture(t, "owner@folio.dev")

	var events []session.Event
	fx.manager.Subscribe(func(event session.Event) { events = append(events, event) })

	result, err := fx.manager.SignIn(context.Background(), identity.Credential{Email: "stranger@example.com"}, "")
	require.NoError(t, err)

	assert.False(t, result.Allowed)
	assert.Empty(t, result.Token)
	require.NotNil(t, result.Notification)
	assert.Equal(t, notify.KindWarning, result.Notification.Kind)
	assert.Contains(t, result.Notification.Message, "stranger@example.com")
	assert.Equal(t, []string{"stranger@example.com"}, fx.provider.signOuts)

	require.Len(t, events, 1)
	assert.Equal(t, session.StateSignedOut, events[0].State)
}

/*
TestManager_SignInProviderError maps provider failures to their user-facing message.
*/
func TestManager_SignInProviderError(t *testing.T) {
	fx := newFixture(t, "owner@folio.dev")
	fx.provider.err = identity.NewError("auth/popup-blocked", "")

	_, err := fx.manager.SignIn(context.Background(), identity.Credential{}, "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appCode(t, err))
	assert.Equal(t, identity.Message(fx.provider.err), err.Error())
}

/*
TestManager_Authorize covers the ways a token stops being accepted.
*/
func TestManager_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		fx := newFixture(t, "owner@folio.dev")
		_, err := fx.manager.Authorize(ctx, "not-a-token")
		assert.Equal(t, "UNAUTHORIZED", appCode(t, err))
	})

	t.Run("session expired in store", func(t *testing.T) {
		fx := newFixture(t, "owner@folio.dev")
		result, err := fx.manager.SignIn(ctx, identity.Credential{Email: "owner@folio.dev"}, "")
		require.NoError(t, err)

		*fx.now = fx.now.Add(13 * time.Hour)
		_, err = fx.manager.Authorize(ctx, result.Token)
		assert.Error(t, err)
		assert.False(t, fx.manager.IsAuthenticated(ctx, result.Token))
	})

	t.Run("signed out", func(t *testing.T) {
		fx := newFixture(t, "owner@folio.dev")
		result, err := fx.manager.SignIn(ctx, identity.Credential{Email: "owner@folio.dev"}, "")
		require.NoError(t, err)

		_, err = fx.manager.SignOut(ctx, result.Token, "")
		require.NoError(t, err)

		_, err = fx.manager.Authorize(ctx, result.Token)
		assert.Equal(t, "UNAUTHORIZED", appCode(t, err))
	})
}

/*
TestManager_SignOut verifies sign-out is idempotent and redirects home by default.
*/
func TestManager_SignOut(t *testing.T) {
	fx := newFixture(t, "owner@folio.dev")
	ctx := context.Background()

	result, err := fx.manager.SignIn(ctx, identity.Credential{Email: "owner@folio.dev"}, "")
	require.NoError(t, err)

	var events []session.Event
	fx.manager.Subscribe(func(event session.Event) { events = append(events, event) })

	first, err := fx.manager.SignOut(ctx, result.Token, "")
	require.NoError(t, err)
	assert.Equal(t, "/", first.RedirectTo)
	assert.Equal(t, int64(1000), first.RedirectAfterMS)
	require.NotNil(t, first.Notification)
	assert.Equal(t, notify.KindInfo, first.Notification.Kind)

	second, err := fx.manager.SignOut(ctx, "", "/blog")
	require.NoError(t, err)
	assert.Equal(t, "/blog", second.RedirectTo)
	assert.Nil(t, second.Notification)

	require.Len(t, events, 1)
	assert.Equal(t, session.StateSignedOut, events[0].State)
}

/*
TestManager_Unsubscribe stops delivery and tolerates a second call.
*/
func TestManager_Unsubscribe(t *testing.T) {
	fx := newFixture(t, "owner@folio.dev")

	calls := 0
	unsubscribe := fx.manager.Subscribe(func(session.Event) { calls++ })
	unsubscribe()
	unsubscribe()

	_, err := fx.manager.SignIn(context.Background(), identity.Credential{Email: "owner@folio.dev"}, "")
	require.NoError(t, err)
	assert.Zero(t, calls)
}

/*
TestAllowList normalizes case and whitespace.
*/
func TestAllowList(t *testing.T) {
	list := session.NewAllowList([]string{" Owner@Folio.dev ", "", "b@x.io"})

	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Contains("owner@folio.dev"))
	assert.True(t, list.Contains("B@X.IO"))
	assert.False(t, list.Contains("c@x.io"))
}
