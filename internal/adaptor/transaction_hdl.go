package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/response"
	"github.com/RajaPrasetya/pos-server-api/internal/usecase"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	service usecase.TransactionService
	log     *zap.Logger
}

func NewTransactionHandler(service usecase.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		log:     log,
	}
}

// CreateTransaction handles POST /api/transactions. Authorship is taken from
// the authenticated principal, never from the request body.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	res, err := h.service.CreateTransaction(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create transaction")
		return
	}

	utils.ResponseCreated(w, "Transaction created successfully", res)
}

// GetAllTransactions handles GET /api/transactions
func (h *TransactionHandler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.GetAllTransactions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all transactions")
		return
	}

	utils.ResponseSuccess(w, "Transactions retrieved successfully", response.TransactionListResponse{
		Transactions: transactions,
	})
}

// GetTransactionByID handles GET /api/transactions/{id}
func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid transaction ID", nil)
		return
	}

	transaction, err := h.service.GetTransactionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get transaction by id")
		return
	}

	utils.ResponseSuccess(w, "Transaction retrieved successfully", transaction)
}

// UpdateTransaction handles PUT /api/transactions/{id}
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid transaction ID", nil)
		return
	}

	var req request.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction updated successfully", transaction)
}

// DeleteTransaction handles DELETE /api/transactions/{id}
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid transaction ID", nil)
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction deleted successfully", nil)
}
