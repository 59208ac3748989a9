package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// JWKSConfig points at the provider's signing keys.
type JWKSConfig struct {
	JWKSURL  string
	Issuer   string
	Audience string
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified,omitempty"`
}

// JWKSProvider verifies provider ID tokens against a JWKS endpoint.
type JWKSProvider struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
	logger  *slog.Logger
}

// NewJWKSProvider fetches the key set and keeps it refreshed until ctx ends.
func NewJWKSProvider(ctx context.Context, config JWKSConfig, logger *slog.Logger) (*JWKSProvider, error) {
	if config.JWKSURL == "" {
		return nil, errors.New("identity: JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{config.JWKSURL})
	if err != nil {
		return nil, fmt.Errorf("identity: failed to create JWKS client: %w", err)
	}

	logger.Info("jwks_provider_initialized", slog.String("jwks_url", config.JWKSURL))
	return NewJWKSProviderWithKeyfunc(jwks.Keyfunc, config, logger), nil
}

// NewJWKSProviderWithKeyfunc uses an already built key lookup.
func NewJWKSProviderWithKeyfunc(kf jwt.Keyfunc, config JWKSConfig, logger *slog.Logger) *JWKSProvider {
	options := []jwt.ParserOption{
		// Only asymmetric algorithms, so a token cannot pick an HMAC key.
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithExpirationRequired(),
	}
	if config.Issuer != "" {
		options = append(options, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		options = append(options, jwt.WithAudience(config.Audience))
	}

	return &JWKSProvider{keyfunc: kf, parser: jwt.NewParser(options...), logger: logger}
}

func (provider *JWKSProvider) Authenticate(ctx context.Context, credential Credential) (*Identity, error) {
	if credential.IDToken == "" {
		return nil, NewError(CodeInvalidCredential, "missing id_token")
	}

	claims := &idTokenClaims{}
	if _, err := provider.parser.ParseWithClaims(credential.IDToken, claims, provider.keyfunc); err != nil {
		provider.logger.WarnContext(ctx, "id_token_rejected", slog.String("error", err.Error()))
		return nil, NewError(CodeInvalidCredential, err.Error())
	}

	if claims.Subject == "" || strings.TrimSpace(claims.Email) == "" {
		return nil, NewError(CodeInvalidCredential, "token has no subject or email")
	}
	if claims.EmailVerified != nil && !*claims.EmailVerified {
		return nil, NewError(CodeInvalidCredential, "email is not verified")
	}

	return &Identity{Subject: claims.Subject, Email: claims.Email}, nil
}

// SignOut has nothing to revoke server-side; the provider session lives in
// the client, which drops it when told the sign-in was declined.
func (provider *JWKSProvider) SignOut(ctx context.Context, identity Identity) error {
	provider.logger.InfoContext(ctx, "identity_signed_out", slog.String("subject", identity.Subject))
	return nil
}
