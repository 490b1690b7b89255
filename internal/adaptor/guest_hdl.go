package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/v1/guests (ADMIN)
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "Guest created", guest)
}

// UpdateGuest handles PUT /api/v1/guests/{guest_id} (ADMIN)
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "guest_id")
	if !ok {
		return
	}

	var req request.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.UpdateGuest(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update guest")
		return
	}

	utils.ResponseSuccess(w, "Guest updated", guest)
}

// GetGuest handles GET /api/v1/guests/{guest_id} (ADMIN)
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "guest_id")
	if !ok {
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get guest")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// GetGuestByName handles GET /api/v1/guests?guest_name= (USER, ADMIN)
func (h *GuestHandler) GetGuestByName(w http.ResponseWriter, r *http.Request) {
	guest, err := h.service.GetGuestByName(r.Context(), r.URL.Query().Get("guest_name"))
	if err != nil {
		handleServiceError(w, h.log, err, "get guest by name")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}
