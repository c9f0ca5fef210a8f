package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/stretchr/testify/require"
)

func guardedEcho(t *testing.T, tokens *auth.TokenManager) (http.Handler, *auth.Identity) {
	t.Helper()
	var captured auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		require.True(t, ok)
		captured = identity
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(tokens, next), &captured
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "shopfront", time.Hour)
	handler, _ := guardedEcho(t, tokens)

	for _, header := range []string{"", "Token abc", "bearer lowercase-scheme"} {
		req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Authorization token missing")
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "shopfront", time.Hour)
	handler, _ := guardedEcho(t, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "shopfront", time.Hour)
	handler, captured := guardedEcho(t, tokens)

	token, err := tokens.Generate(models.User{ID: "user-1", Email: "ada@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", captured.ID)
	require.Equal(t, "ada@x.com", captured.Email)
	require.Equal(t, models.RoleUser, captured.Role)
}
