// Package session carries the opaque per-client token that partitions
// cart and wishlist state. The token is never validated or expired:
// whatever the client presents is the partition key.
package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"BrewStore/pkg/kit"
)

const (
	// Header is the request header carrying the session token.
	Header = "X-Session-Id"

	// DefaultToken scopes requests that present no token.
	DefaultToken = "default-session"
)

type ctxKey struct{}

// FromContext returns the session token for the request. Requests that
// skipped the middleware fall back to the default token.
func FromContext(ctx context.Context) string {
	if tok, ok := ctx.Value(ctxKey{}).(string); ok && tok != "" {
		return tok
	}
	return DefaultToken
}

// Middleware reads the session header and stores the token in the
// request context, substituting the default when absent.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := r.Header.Get(Header)
		if tok == "" {
			tok = DefaultToken
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, tok)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IssueHandler mints a fresh token for clients that want their own
// partition instead of the shared default.
func IssueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kit.WriteJSON(w, http.StatusCreated, map[string]string{
			"sessionId": "s_" + uuid.NewString(),
		})
	}
}
