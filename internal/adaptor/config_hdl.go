package adaptor

import (
	"net/http"

	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConfigHandler struct {
	service usecase.ConfigService
	log     *zap.Logger
}

func NewConfigHandler(service usecase.ConfigService, log *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		service: service,
		log:     log.With(zap.String("handler", "config")),
	}
}

// GetProperties handles GET /{application}/{profile} (public)
func (h *ConfigHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	application := chi.URLParam(r, "application")
	profile := chi.URLParam(r, "profile")

	props, err := h.service.GetProperties(r.Context(), application, profile)
	if err != nil {
		handleServiceError(w, h.log, err, "get properties")
		return
	}

	h.log.Info("Properties served",
		zap.String("application", application),
		zap.String("profile", profile),
		zap.Int("keys", len(props.Source)))

	utils.ResponseSuccess(w, "success", props)
}
