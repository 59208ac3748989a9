package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/sec"
)

// PasswordProvider accepts one email with a bcrypt-hashed password. It is
// meant for local development where no hosted provider is reachable.
type PasswordProvider struct {
	email  string
	hash   string
	logger *slog.Logger
}

func NewPasswordProvider(email, hash string, logger *slog.Logger) *PasswordProvider {
	return &PasswordProvider{email: email, hash: hash, logger: logger}
}

func (provider *PasswordProvider) Authenticate(ctx context.Context, credential Credential) (*Identity, error) {
	if provider.hash == "" {
		return nil, NewError(CodeOperationNotAllowed, "password sign-in is disabled")
	}

	if !strings.EqualFold(strings.TrimSpace(credential.Email), provider.email) ||
		!sec.CheckPasswordHash(credential.Password, provider.hash) {
		provider.logger.WarnContext(ctx, "password_sign_in_rejected", slog.String("email", credential.Email))
		return nil, NewError(CodeInvalidCredential, "wrong email or password")
	}

	return &Identity{Subject: "password:" + strings.ToLower(provider.email), Email: provider.email}, nil
}

func (provider *PasswordProvider) SignOut(context.Context, Identity) error { return nil }
