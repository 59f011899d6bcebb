package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mleow/account-be/internal/auth"
	"github.com/mleow/account-be/internal/http/respond"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// Auth returns middleware that verifies the bearer token and stores its
// claims in the request context. Requests with a missing or invalid token
// get a 401 and never reach the handler.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respond.Error(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retrieves the verified claims placed by Auth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}
