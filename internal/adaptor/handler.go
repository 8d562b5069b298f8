package adaptor

import (
	"errors"
	"net/http"

	"github.com/RajaPrasetya/pos-server-api/internal/usecase"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User              *UserHandler
	Category          *CategoryHandler
	Product           *ProductHandler
	PaymentMethod     *PaymentMethodHandler
	Transaction       *TransactionHandler
	DetailTransaction *DetailTransactionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:              NewUserHandler(service.User, log),
		Category:          NewCategoryHandler(service.Category, log),
		Product:           NewProductHandler(service.Product, log),
		PaymentMethod:     NewPaymentMethodHandler(service.PaymentMethod, log),
		Transaction:       NewTransactionHandler(service.Transaction, log),
		DetailTransaction: NewDetailTransactionHandler(service.DetailTransaction, log),
	}
}

// handleServiceError maps service sentinel errors to HTTP responses. The
// sentinel text is the client-facing message; anything unrecognized is logged
// and hidden behind a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrPaymentMethodNotFound),
		errors.Is(err, usecase.ErrTransactionNotFound),
		errors.Is(err, usecase.ErrDetailTransactionNotFound),
		errors.Is(err, usecase.ErrNoDetailTransactions),
		errors.Is(err, usecase.ErrNoDetailTransactionsForTransaction):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUsernameExists),
		errors.Is(err, usecase.ErrEmailExists),
		errors.Is(err, usecase.ErrCategoryNameExists),
		errors.Is(err, usecase.ErrProductNameExists),
		errors.Is(err, usecase.ErrPaymentMethodNameExists),
		errors.Is(err, usecase.ErrDetailUpdateNotPending),
		errors.Is(err, usecase.ErrDetailDeleteNotPending),
		errors.Is(err, usecase.ErrInvalidTotalPrice),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrice):
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Unexpected service error", zap.String("op", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
