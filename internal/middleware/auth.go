package middleware

import (
	"context"
	"net/http"
	"strings"

	"prepsquad/internal/utils"
)

type contextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey contextKey = "user_id"

// AuthJWT rejects requests without a valid bearer token and stores the token
// subject in the request context. It does not resolve the subject to a user
// record; handlers that need the full record look it up themselves.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				utils.Error(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			userID, err := utils.ParseJWT(strings.TrimPrefix(header, prefix), secret)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
