package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mleow/account-be/internal/auth"
)

func newAuthedHandler(t *testing.T, tokens *auth.TokenManager) (http.Handler, *auth.Claims) {
	t.Helper()
	var seen auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok, "claims missing from context")
		seen = claims
		w.WriteHeader(http.StatusOK)
	})
	return Auth(tokens)(next), &seen
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", "test", time.Hour)
	handler, seen := newAuthedHandler(t, tokens)

	token, err := tokens.Generate("user-1", "u@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", seen.UserID)
	require.Equal(t, "u@x.com", seen.Email)
}

func TestAuth_Rejections(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", "test", time.Hour)
	handler, _ := newAuthedHandler(t, tokens)

	otherToken, err := auth.NewTokenManager("other-secret", "test", time.Hour).Generate("user-1", "u@x.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "token-without-scheme"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + otherToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var out struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			require.NotEmpty(t, out.Message)
		})
	}
}
