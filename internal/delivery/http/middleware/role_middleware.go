package middleware

import (
	"context"
	"net/http"

	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// UserFinder loads the stored account behind an authenticated email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type RoleMiddleware struct {
	users UserFinder
	log   *logrus.Logger
}

func NewRoleMiddleware(users UserFinder, log *logrus.Logger) *RoleMiddleware {
	return &RoleMiddleware{users: users, log: log}
}

// RequireAdmin checks the stored role of the authenticated user on every
// request. Inactive admins are refused. It must run after Authenticate.
func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "")
			return
		}

		user, err := m.users.FindByEmail(r.Context(), email)
		if err != nil {
			m.log.Warnf("Failed to load user %s for admin check: %+v", email, err)
			response.InternalServerError(w, "Failed to verify access")
			return
		}
		if !user.IsAdmin() || !user.IsActive() {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
