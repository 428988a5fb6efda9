package auth

import (
	"context"
)

// `contextKey` is a custom type for context keys. Using a custom type prevents collisions
// with context keys defined in other packages.
type contextKey string

const identityContextKey contextKey = "auth_identity"

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID int64
	Email  string
}

// NewContextWithIdentity returns a child context carrying id.
func NewContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext extracts the Identity stored by JWTMiddleware.
// The second return value reports whether one was present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(*Identity)
	return id, ok && id != nil
}
