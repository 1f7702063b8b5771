package ports

import (
	"context"

	"datacat/internal/domain"
)

// SessionStore persists the session marker between runs.
type SessionStore interface {
	// Load returns the stored marker, or nil when nobody is logged in.
	Load(ctx context.Context) (*domain.User, error)

	// Save stores the marker verbatim, replacing any previous one.
	Save(ctx context.Context, user domain.User) error

	// Clear removes the marker. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	Close() error
}
