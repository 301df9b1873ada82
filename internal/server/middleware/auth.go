// Package middleware guards routes that need a signed-in session.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/career-board/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const userKey ContextKey = "user"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionClaims, error)
}

// SessionClaims exposes the session a token was issued for.
type SessionClaims interface {
	GetSessionID() string
}

// SessionSource reports the active session.
type SessionSource interface {
	Current() (types.User, bool)
}

// AuthMiddleware admits requests whose bearer token belongs to the active
// session and stores that session's user in the request context. Tokens from
// a session that has since logged out, or been replaced, are rejected.
func AuthMiddleware(tokens TokenValidator, sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, ok := sessions.Current()
			if !ok || user.ID != claims.GetSessionID() {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose session lacks role. It must run inside
// AuthMiddleware.
func RequireRole(role types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := GetUser(r)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if user.Role != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (types.User, error) {
	user, ok := r.Context().Value(userKey).(types.User)
	if !ok {
		return types.User{}, fmt.Errorf("user not found in request context")
	}
	return user, nil
}

// WithUser returns a copy of r carrying user, as AuthMiddleware would.
func WithUser(r *http.Request, user types.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}
