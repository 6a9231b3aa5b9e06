package middleware

import (
	"context"
	"net/http"
	"strings"

	"diagnostic-center-api/pkg/jwt"
	"diagnostic-center-api/pkg/response"

	"github.com/gorilla/mux"
)

type contextKey string

const UserEmailKey contextKey = "user_email"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate rejects a missing bearer token with 401 and a malformed,
// forged or expired one with 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Forbidden(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Forbidden(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), claims.Email)))
	})
}

// RequireOwner allows the request only when the route variable param equals
// the authenticated email. It must run after Authenticate.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := GetUserEmailFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}
			if mux.Vars(r)[param] != email {
				response.Forbidden(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok && email != ""
}

// WithUserEmail returns a copy of ctx carrying email as the authenticated user.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}
