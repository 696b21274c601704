package session

import (
	"context"
	"errors"
	"fmt"

	"messageboard/models"
	"messageboard/repositories"
)

// TokenStore looks up the user a session token was issued for.
type TokenStore interface {
	FindUser(ctx context.Context, token string) (*models.SessionUser, error)
}

// Resolve maps a session token to its user. A missing, unknown or revoked
// token yields a nil user and no error; only storage failures are errors.
func Resolve(ctx context.Context, store TokenStore, token string) (*models.SessionUser, error) {
	if token == "" {
		return nil, nil
	}

	user, err := store.FindUser(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}

type contextKey struct{}

// WithUser returns a copy of ctx carrying the resolved session user.
func WithUser(ctx context.Context, user *models.SessionUser) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the session user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.SessionUser {
	user, _ := ctx.Value(contextKey{}).(*models.SessionUser)
	return user
}
