package session

import (
	"context"
	"time"
)

// Record is a live admin session.
type Record struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions until they expire.
type Store interface {
	Save(ctx context.Context, record Record, ttl time.Duration) error
	// Find returns nil when the session is absent or expired.
	Find(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}
