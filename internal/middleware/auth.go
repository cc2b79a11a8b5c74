package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/holidaze/holidaze-api/internal/pkg/jwt"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/session"
)

type contextKey string

const sessionKey contextKey = "session"

// Auth returns middleware that validates the session JWT and resolves the
// server-side session record. A token whose session record has expired or
// been logged out is treated as unauthorized even if the JWT itself is
// still valid.
func Auth(jwtService *jwt.Service, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwtService.ValidateSessionToken(parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrExpiredToken) {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			sess, err := sessions.Get(r.Context(), claims.SessionID)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					response.Unauthorized(w, "Session expired, please log in again")
				} else {
					response.InternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the authenticated session from context
func GetSession(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return s
	}
	return nil
}

// RequireVenueManager returns middleware that restricts a route to venue
// managers.
func RequireVenueManager() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			if sess == nil {
				response.Unauthorized(w, "User not authenticated")
				return
			}
			if !sess.VenueManager {
				response.Forbidden(w, "Venue manager account required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
