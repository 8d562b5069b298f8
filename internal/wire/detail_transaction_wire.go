package wire

import (
	"github.com/RajaPrasetya/pos-server-api/internal/adaptor"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDetailTransaction(
	r chi.Router,
	detailTransactionHandler *adaptor.DetailTransactionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every detail transaction route requires authentication
	r.Route("/api/transaction-details", func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Post("/", detailTransactionHandler.CreateDetailTransaction)
		r.Get("/", detailTransactionHandler.GetAllDetailTransactions)
		r.Get("/transaction/{transactionId}", detailTransactionHandler.GetDetailTransactionsByTransactionID)
		r.Get("/{id}", detailTransactionHandler.GetDetailTransactionByID)
		r.Put("/{id}", detailTransactionHandler.UpdateDetailTransaction)
		r.Delete("/{id}", detailTransactionHandler.DeleteDetailTransaction)
	})
}
