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

func wirePaymentMethod(
	r chi.Router,
	paymentMethodHandler *adaptor.PaymentMethodHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/payment-methods", paymentMethodHandler.GetAllPaymentMethods)
	r.Get("/api/payment-methods/{id_payment}", paymentMethodHandler.GetPaymentMethodByID)

	// Mutations require an admin or manager principal
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleManager))

		r.Post("/api/payment-methods", paymentMethodHandler.CreatePaymentMethod)
		r.Put("/api/payment-methods/{id_payment}", paymentMethodHandler.UpdatePaymentMethod)
		r.Delete("/api/payment-methods/{id_payment}", paymentMethodHandler.DeletePaymentMethod)
	})
}
