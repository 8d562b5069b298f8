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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	res, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", res)
}

// GetAllCategories handles GET /api/categories
func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// GetCategoryByID handles GET /api/categories/{id_category}
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_category"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get category by id")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved successfully", category)
}

// UpdateCategory handles PUT /api/categories/{id_category}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_category"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation error", validationErrors)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/{id_category}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id_category"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}
