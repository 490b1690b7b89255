package wire

import (
	"hotel-reservation/internal/adaptor"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

// WiringConfig builds the config server.
func WiringConfig(config *utils.Config, logger *zap.Logger) *App {
	configHandler := adaptor.NewConfigHandler(usecase.NewConfigService(config.ConfigServer.Dir, logger), logger)

	r := setupRouter(logger)

	// ==================== PUBLIC ROUTES ====================
	// GET /{application}/{profile} - Property source of one application profile
	r.Get("/{application}/{profile}", configHandler.GetProperties)

	return &App{Router: r}
}
