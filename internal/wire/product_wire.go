package wire

import (
	"github.com/RajaPrasetya/pos-server-api/internal/adaptor"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/products", productHandler.GetAllProducts)
	r.Get("/api/products/{id_product}", productHandler.GetProductByID)

	// Mutations require authentication but no particular role
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Post("/api/products", productHandler.CreateProduct)
		r.Put("/api/products/{id_product}", productHandler.UpdateProduct)
		r.Delete("/api/products/{id_product}", productHandler.DeleteProduct)
	})
}
