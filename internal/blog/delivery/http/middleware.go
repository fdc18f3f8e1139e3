package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tair/blog-platform/pkg/auth"
)

type contextKey string

const (
	// UserIDKey holds the authenticated caller's id
	UserIDKey contextKey = "user_id"
	// EmailKey holds the authenticated caller's email
	EmailKey contextKey = "email"
)

// AuthMiddleware validates the JWT bearer token and rejects anonymous callers
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := bearerClaims(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Valid bearer token required")
			return
		}

		next.ServeHTTP(w, r.WithContext(claimsContext(r.Context(), claims)))
	}
}

// OptionalAuthMiddleware attaches identity when a valid token is present
// but lets anonymous requests through. Single-blog reads use it to
// compute the viewer's favourite flag.
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := bearerClaims(r); ok {
			r = r.WithContext(claimsContext(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	}
}

func bearerClaims(r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func claimsContext(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	return context.WithValue(ctx, EmailKey, claims.Email)
}

// callerID extracts the authenticated user id from the request context
func callerID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(UserIDKey).(uint)
	return id, ok
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
