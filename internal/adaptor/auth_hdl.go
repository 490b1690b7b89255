package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Authenticate handles POST /api/v1/authenticate (public)
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req request.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "authenticate")
		return
	}

	utils.ResponseSuccess(w, "Authenticated", token)
}
