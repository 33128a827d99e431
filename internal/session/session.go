// Package session owns the one piece of local state this client has: the API
// token of each signed-in browser. The browser holds only an opaque session
// id in a cookie; the token itself lives in a Store and travels to API-calling
// collaborators through the request context.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the session id is unknown or expired.
	ErrNotFound = errors.New("session not found")
	// ErrNoToken means the current context carries no API token.
	ErrNoToken = errors.New("no API token in context")
)

// Store maps opaque session ids to API tokens.
type Store interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

// NewID returns a fresh opaque session id.
func NewID() string {
	return uuid.NewString()
}

type tokenKey struct{}

// WithToken returns a context carrying the API token for downstream calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the API token placed by the session middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// ContextTokenSource resolves tokens from the request context. It satisfies
// the API client's TokenSource and is the seam tests use to inject fakes.
type ContextTokenSource struct{}

// Token implements investapi.TokenSource.
func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return "", ErrNoToken
	}
	return token, nil
}
