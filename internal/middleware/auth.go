package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hongminglow/shopfront/internal/apperr"
	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/http/respond"
)

type contextKey struct{}

var identityKey contextKey

// RequireAuth validates the bearer token on a protected route and attaches
// the decoded identity to the request context. It is a pure gate: no side
// effects beyond the context value.
func RequireAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respond.Err(w, apperr.Auth("Authorization token missing"))
			return
		}
		identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respond.Err(w, apperr.Auth("Invalid token"))
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom returns the authenticated identity attached by RequireAuth.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
