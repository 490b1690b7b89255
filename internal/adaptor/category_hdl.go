package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// CreateCategory handles POST /api/v1/hotels/{hotel_id}/categories (ADMIN)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// UpdateCategory handles PUT /api/v1/hotels/{hotel_id}/categories/{category_id} (ADMIN)
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "category_id")
	if !ok {
		return
	}

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), hotelID, categoryID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// GetCategories handles GET /api/v1/hotels/{hotel_id}/categories (USER, ADMIN)
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}

	categories, err := h.service.GetCategories(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetCategory handles GET /api/v1/hotels/{hotel_id}/categories/{category_id} (USER, ADMIN)
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "category_id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(r.Context(), hotelID, categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}
