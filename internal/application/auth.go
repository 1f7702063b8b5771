package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"datacat/internal/domain"
	"datacat/internal/ports"
)

// DefaultCredentials is the fixed login table.
func DefaultCredentials() []domain.User {
	return []domain.User{
		{Username: "admin", Password: "admin123"},
		{Username: "user", Password: "user123"},
		{Username: "test", Password: "test123"},
	}
}

// Authenticate returns the entry exactly matching username and password.
func Authenticate(users []domain.User, username, password string) (domain.User, bool) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}

// AuthProvider holds the login state for one process. The persisted marker
// is trusted as is: it is checked against the table only at login.
type AuthProvider struct {
	mu     sync.RWMutex
	store  ports.SessionStore
	users  []domain.User
	logger *zap.Logger
	user   *domain.User
}

// NewAuthProvider creates an auth provider. A nil users table means
// DefaultCredentials.
func NewAuthProvider(store ports.SessionStore, users []domain.User, logger *zap.Logger) *AuthProvider {
	if users == nil {
		users = DefaultCredentials()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthProvider{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// Restore adopts a persisted session marker, if any.
func (a *AuthProvider) Restore(ctx context.Context) error {
	user, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	if user != nil {
		a.logger.Debug("session restored", zap.String("username", user.Username))
	}
	return nil
}

// Login checks the pair against the credential table and persists the match.
// Any mismatch yields ErrInvalidCredentials and leaves state untouched.
func (a *AuthProvider) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, ok := Authenticate(a.users, username, password)
	if !ok {
		a.logger.Info("login rejected", zap.String("username", username))
		return domain.User{}, ErrInvalidCredentials
	}

	if err := a.store.Save(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()

	a.logger.Info("login", zap.String("username", user.Username))
	return user, nil
}

// Logout drops the session in memory and in the store.
func (a *AuthProvider) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	a.logger.Info("logout")
	return nil
}

// Current returns the logged-in user.
func (a *AuthProvider) Current() (domain.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return domain.User{}, false
	}
	return *a.user, true
}

// IsAuthenticated reports whether a session is active.
func (a *AuthProvider) IsAuthenticated() bool {
	_, ok := a.Current()
	return ok
}

// RequireUser returns the current user or ErrNotAuthenticated.
func (a *AuthProvider) RequireUser() (domain.User, error) {
	user, ok := a.Current()
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}
	return user, nil
}
