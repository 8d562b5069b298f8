package middleware

import (
	"net/http"
	"strings"

	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/token"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the acting user from the Authorization header. The
// presented token must decode AND match the token currently stored on the
// user row; a decodable but replaced or cleared token is rejected, which is
// what makes logout a real revocation. All failures collapse into a single
// 401 with no detail about which check tripped.
func Authenticate(userRepo repository.UserRepository, jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			presented := parts[1]

			claims := token.Decode(jwtSecret, presented)
			if claims == nil {
				logger.Warn("Rejected undecodable session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			user, err := userRepo.FindByID(r.Context(), claims.IDUser)
			if err != nil {
				logger.Error("Failed to resolve user for session token",
					zap.Error(err),
					zap.Int64("id_user", claims.IDUser),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Token == nil || *user.Token != presented {
				logger.Warn("Rejected stale session token", zap.Int64("id_user", claims.IDUser))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			ctx := utils.SetPrincipal(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
