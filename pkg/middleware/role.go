package middleware

import (
	"net/http"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"go.uber.org/zap"
)

// RequireRoles gates a route to the given roles. It must run after
// Authenticate: a request with no resolved principal gets 401, never 403.
func RequireRoles(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetPrincipal(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			if _, ok := allowed[user.Role]; !ok {
				logger.Warn("Role check rejected request",
					zap.Int64("id_user", user.IDUser),
					zap.String("role", string(user.Role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
