// Package middlewarectx contains the HTTP middleware for JWT checks and
// rate limiting.
//
// JWTMiddleware verifies the token in the Authorization header through
// the auth service and, on success, puts the operator's email and UID
// into the request context for the handlers.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Key is the type of the request context keys set by this package.
type Key string

const (
	// User is the context key holding the operator's email.
	User Key = "user"
	// UserUID is the context key holding the operator's UID.
	UserUID Key = "user_uid"
)

// Service describes the token validation the middleware needs.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, bool, error)
}

// JWTMiddleware returns an HTTP middleware checking the JWT in the
// Authorization header.
//
// A valid token puts the operator's identity into the request context;
// anything else answers 401 Unauthorized.
func JWTMiddleware(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, valid, err := auth.ValidateToken(r.Context(), tokenStr)
			if err != nil || !valid {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, user.Email)
			ctx = context.WithValue(ctx, UserUID, user.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
