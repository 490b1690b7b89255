package wire

import (
	"hotel-reservation/internal/adaptor"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/middleware"
	"hotel-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WiringGuest builds the guest service.
func WiringGuest(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	guestHandler := adaptor.NewGuestHandler(usecase.NewGuestService(repo.Guest, logger), logger)

	r := setupRouter(logger)
	wireGuest(r, guestHandler, config, logger)

	return &App{Router: r}
}

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/v1/guests", func(r chi.Router) {
		r.Use(middleware.JWTAuth(config.JWT.Secret, log))

		// ==================== USER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, utils.RoleUser, utils.RoleAdmin))

			// GET /api/v1/guests?guest_name= - Resolve the caller's guest record
			r.Get("/", guestHandler.GetGuestByName)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, utils.RoleAdmin))

			r.Post("/", guestHandler.CreateGuest)
			r.Put("/{guest_id}", guestHandler.UpdateGuest)
			r.Get("/{guest_id}", guestHandler.GetGuest)
		})
	})
}
