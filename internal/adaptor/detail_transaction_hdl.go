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

type DetailTransactionHandler struct {
	service usecase.DetailTransactionService
	log     *zap.Logger
}

func NewDetailTransactionHandler(service usecase.DetailTransactionService, log *zap.Logger) *DetailTransactionHandler {
	return &DetailTransactionHandler{
		service: service,
		log:     log,
	}
}

// CreateDetailTransaction handles POST /api/transaction-details
func (h *DetailTransactionHandler) CreateDetailTransaction(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDetailTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	res, err := h.service.CreateDetailTransaction(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create detail transaction")
		return
	}

	utils.ResponseCreated(w, "Detail transaction created successfully", res)
}

// GetAllDetailTransactions handles GET /api/transaction-details
func (h *DetailTransactionHandler) GetAllDetailTransactions(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetAllDetailTransactions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all detail transactions")
		return
	}

	utils.ResponseSuccess(w, "Detail transactions retrieved successfully", response.DetailTransactionListResponse{
		DetailTransactions: details,
	})
}

// GetDetailTransactionByID handles GET /api/transaction-details/{id}
func (h *DetailTransactionHandler) GetDetailTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	detail, err := h.service.GetDetailTransactionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get detail transaction by id")
		return
	}

	utils.ResponseSuccess(w, "Detail transaction retrieved successfully", detail)
}

// GetDetailTransactionsByTransactionID handles
// GET /api/transaction-details/transaction/{transactionId}
func (h *DetailTransactionHandler) GetDetailTransactionsByTransactionID(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.ParseInt(chi.URLParam(r, "transactionId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid Transaction ID", nil)
		return
	}

	details, err := h.service.GetDetailTransactionsByTransactionID(r.Context(), transactionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get detail transactions by transaction id")
		return
	}

	utils.ResponseSuccess(w, "Detail transactions retrieved successfully", details)
}

// UpdateDetailTransaction handles PUT /api/transaction-details/{id}
func (h *DetailTransactionHandler) UpdateDetailTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	var req request.UpdateDetailTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	detail, err := h.service.UpdateDetailTransaction(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update detail transaction")
		return
	}

	utils.ResponseSuccess(w, "Detail transaction updated successfully", detail)
}

// DeleteDetailTransaction handles DELETE /api/transaction-details/{id}
func (h *DetailTransactionHandler) DeleteDetailTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	if err := h.service.DeleteDetailTransaction(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete detail transaction")
		return
	}

	utils.ResponseSuccess(w, "Detail transaction deleted successfully", nil)
}
