package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bloglist/bloglist-go/internal/crypto"
	"github.com/bloglist/bloglist-go/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// UserResolver looks up a live user record for a verified claim. Satisfied
// by repository.UserRepository.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// Authenticate returns middleware that extracts a Bearer token from the
// Authorization header, verifies it and resolves the claim into a user
// record. All failure modes — missing header, malformed header, bad or
// expired token, claim pointing at a deleted user — answer 401 with the
// same message, so callers cannot probe which check failed.
//
// The resolved user is attached to the request context; handlers extract it
// once and pass it explicitly into service calls.
func Authenticate(secret string, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "token missing or invalid")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "token missing or invalid")
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "token missing or invalid")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing or malformed header yields no token.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
