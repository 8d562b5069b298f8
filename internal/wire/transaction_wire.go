package wire

import (
	"github.com/RajaPrasetya/pos-server-api/internal/adaptor"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTransaction(
	r chi.Router,
	transactionHandler *adaptor.TransactionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every transaction route requires authentication
	r.Route("/api/transactions", func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Post("/", transactionHandler.CreateTransaction)
		r.Get("/", transactionHandler.GetAllTransactions)
		r.Get("/{id}", transactionHandler.GetTransactionByID)
		r.Put("/{id}", transactionHandler.UpdateTransaction)
		r.Delete("/{id}", transactionHandler.DeleteTransaction)
	})
}
