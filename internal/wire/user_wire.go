package wire

import (
	"github.com/RajaPrasetya/pos-server-api/internal/adaptor"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/users", userHandler.Register)
	r.Post("/api/users/login", userHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Get("/api/users", userHandler.GetAllUsers)
		r.Get("/api/users/current", userHandler.GetCurrentUser)
		r.Delete("/api/users/logout", userHandler.Logout)
		r.Get("/api/users/{username}", userHandler.GetUserByUsername)
		r.Put("/api/users/{username}", userHandler.UpdateUser)
	})
}
