package wire

import (
	"github.com/RajaPrasetya/pos-server-api/internal/adaptor"
	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/categories", categoryHandler.GetAllCategories)
	r.Get("/api/categories/{id_category}", categoryHandler.GetCategoryByID)

	// Mutations require an admin or manager principal
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleManager))

		r.Post("/api/categories", categoryHandler.CreateCategory)
		r.Put("/api/categories/{id_category}", categoryHandler.UpdateCategory)
		r.Delete("/api/categories/{id_category}", categoryHandler.DeleteCategory)
	})
}
