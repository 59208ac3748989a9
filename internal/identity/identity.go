/*
Package identity verifies who is signing in, by delegating to a hosted
identity provider. It knows nothing about the allow-list or sessions; see
package session for those.
*/
package identity

import (
	"context"
	"errors"
	"strings"
)

// Credential is what the client obtained from the provider's sign-in flow.
// IDToken is set for the hosted provider; Email and Password for the
// development provider.
type Credential struct {
	IDToken  string `json:"id_token,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Identity is a verified user.
type Identity struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// Provider authenticates credentials and can end the provider-side session.
type Provider interface {
	Authenticate(ctx context.Context, credential Credential) (*Identity, error)
	SignOut(ctx context.Context, identity Identity) error
}

// Provider error codes. Clients may send them with or without the "auth/" prefix.
const (
	CodePopupClosed          = "popup-closed-by-user"
	CodePopupBlocked         = "popup-blocked"
	CodeUnauthorizedDomain   = "unauthorized-domain"
	CodeNetworkRequestFailed = "network-request-failed"
	CodeInvalidAPIKey        = "invalid-api-key"
	CodeOperationNotAllowed  = "operation-not-allowed"
	CodeInvalidCredential    = "invalid-credential"
)

var messages = map[string]string{
	CodePopupClosed:          "Sign-in was cancelled before it finished. Please try again.",
	CodePopupBlocked:         "The sign-in popup was blocked. Allow popups for this site and try again.",
	CodeUnauthorizedDomain:   "This domain is not authorized for sign-in. Contact the site owner.",
	CodeNetworkRequestFailed: "Network error during sign-in. Check your connection and try again.",
	CodeInvalidAPIKey:        "Sign-in is misconfigured: the provider rejected the API key.",
	CodeOperationNotAllowed:  "This sign-in method is not enabled.",
	CodeInvalidCredential:    "The sign-in credential is invalid or has expired.",
}

// Error is a provider failure.
type Error struct {
	Code string
	Raw  string
}

func (e *Error) Error() string {
	return "identity: " + e.Code + ": " + e.Raw
}

// NewError normalizes code and wraps raw provider text.
func NewError(code, raw string) *Error {
	return &Error{Code: strings.TrimPrefix(strings.TrimSpace(code), "auth/"), Raw: raw}
}

// Message is the user-facing text for err. Unknown codes and non-provider
// errors get a generic message carrying the raw text.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var providerErr *Error
	if !errors.As(err, &providerErr) {
		return "Sign-in failed: " + err.Error()
	}
	if message, ok := messages[providerErr.Code]; ok {
		return message
	}

	raw := providerErr.Raw
	if raw == "" {
		raw = providerErr.Code
	}
	return "Sign-in failed: " + raw
}
