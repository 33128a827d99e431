package middleware

import (
	"context"
	"net/http"

	"github.com/investa-app/webclient/internal/session"
)

// SessionCookie is the name of the cookie carrying the opaque session id.
const SessionCookie = "investa_session"

// ContextKey is the type for context keys
type ContextKey string

// SessionIDKey is the context key for the resolved session id
const SessionIDKey ContextKey = "session_id"

// Session resolves the session cookie against the store and, on a hit, puts
// the API token and session id on the request context. A missing or expired
// session is not an error here; protected routes enforce it via RequireAuth.
func Session(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.WithToken(r.Context(), token)
			ctx = context.WithValue(ctx, SessionIDKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects to the login page when the request carries no API
// token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.TokenFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionID extracts the session id from the request context
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}
