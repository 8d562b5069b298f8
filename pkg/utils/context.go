package utils

import (
	"context"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
)

type contextKey string

const principalKey contextKey = "principal"

// SetPrincipal attaches the authenticated user to the request context. The
// principal is always passed explicitly through the context of the request
// that resolved it, never held in package state.
func SetPrincipal(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// GetPrincipal returns the authenticated user resolved by the auth
// middleware, or false when the request did not pass authentication.
func GetPrincipal(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(principalKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
