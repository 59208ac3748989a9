// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/sec"
)

func newTokenService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKeys(key, &key.PublicKey, issuer)
}

/*
TestTokenService_RoundTrip verifies that a signed session token verifies and
carries the session id and email.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, "folio.test")

	token, err := service.GenerateSessionToken("sess-1", "owner@folio.dev", time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "owner@folio.dev", claims.Email)
	assert.Equal(t, "owner@folio.dev", claims.Subject)
}

/*
TestTokenService_Rejects covers expired tokens, foreign keys and issuers.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newTokenService(t, "folio.test")

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateSessionToken("sess-1", "owner@folio.dev", -time.Minute)
		require.NoError(t, err)
		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other key", func(t *testing.T) {
		other := newTokenService(t, "folio.test")
		token, err := other.GenerateSessionToken("sess-1", "owner@folio.dev", time.Hour)
		require.NoError(t, err)
		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := newTokenService(t, "elsewhere")
		token, err := other.GenerateSessionToken("sess-1", "owner@folio.dev", time.Hour)
		require.NoError(t, err)
		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

/*
TestPasswordHash verifies bcrypt hashing for the development identity provider.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong", hash))
}
