// Package middleware provides HTTP middleware for bearer-token authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const clientIDKey ContextKey = "clientID"

// TokenValidator validates a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (ClientIDGetter, error)
}

// ClientIDGetter extracts the client identity from token claims.
type ClientIDGetter interface {
	GetClientID() string
}

// Auth returns middleware that validates the Authorization bearer token and
// stores the authenticated client ID in the request context.
func Auth(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), clientIDKey, claims.GetClientID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID extracts the authenticated client ID from the request context.
func GetClientID(r *http.Request) (string, error) {
	clientID, ok := r.Context().Value(clientIDKey).(string)
	if !ok || clientID == "" {
		return "", fmt.Errorf("client ID not found in request context")
	}
	return clientID, nil
}

// ClientIDKey returns the context key for the client ID, for tests.
func ClientIDKey() ContextKey {
	return clientIDKey
}
