package auth

import (
	"context"
	"net/http"
)

type contextKey string

const usernameKey contextKey = "username"

type AuthenticateMiddleware struct {
	Secret []byte
}

func (m *AuthenticateMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		username, err := VerifyUser(r, m.Secret)
		if err != nil {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthenticatedUser returns the username stashed by the middleware.
func GetAuthenticatedUser(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(usernameKey).(string)
	return username, ok
}
