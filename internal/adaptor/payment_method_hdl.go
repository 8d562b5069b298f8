package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/usecase"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentMethodHandler struct {
	service usecase.PaymentMethodService
	log     *zap.Logger
}

func NewPaymentMethodHandler(service usecase.PaymentMethodService, log *zap.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service: service,
		log:     log,
	}
}

// CreatePaymentMethod handles POST /api/payment-methods
func (h *PaymentMethodHandler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentMethodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	res, err := h.service.CreatePaymentMethod(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment method")
		return
	}

	utils.ResponseCreated(w, "Payment method created successfully", res)
}

// GetAllPaymentMethods handles GET /api/payment-methods
func (h *PaymentMethodHandler) GetAllPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetAllPaymentMethods(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all payment methods")
		return
	}

	utils.ResponseSuccess(w, "Payment methods retrieved successfully", paymentMethods)
}

// GetPaymentMethodByID handles GET /api/payment-methods/{id_payment}
func (h *PaymentMethodHandler) GetPaymentMethodByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_payment"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment method ID", nil)
		return
	}

	paymentMethod, err := h.service.GetPaymentMethodByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment method by id")
		return
	}

	utils.ResponseSuccess(w, "Payment method retrieved successfully", paymentMethod)
}

// UpdatePaymentMethod handles PUT /api/payment-methods/{id_payment}
func (h *PaymentMethodHandler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_payment"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment method ID", nil)
		return
	}

	var req request.CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	paymentMethod, err := h.service.UpdatePaymentMethod(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method updated successfully", paymentMethod)
}

// DeletePaymentMethod handles DELETE /api/payment-methods/{id_payment}
func (h *PaymentMethodHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_payment"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment method ID", nil)
		return
	}

	if err := h.service.DeletePaymentMethod(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method deleted successfully", nil)
}
