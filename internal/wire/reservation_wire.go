package wire

import (
	"hotel-reservation/internal/adaptor"
	"hotel-reservation/internal/client"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/messaging"
	"hotel-reservation/pkg/middleware"
	"hotel-reservation/pkg/resilience"
	"hotel-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WiringReservation builds the reservation service with its remote
// collaborators. The event publisher is optional: without a broker the
// service runs with a no-op publisher.
func WiringReservation(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	app := &App{}

	hotels := client.NewHotelClient(config.Services.HotelURL, nil, logger)
	guests := client.NewGuestClient(config.Services.GuestURL, nil, logger)
	guards := usecase.NewReservationGuards(resilience.PolicyFromConfig(config.Resilience), logger)

	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if config.RabbitMQ.URL != "" {
		rabbit, err := messaging.NewRabbitPublisher(config.RabbitMQ.URL, config.RabbitMQ.Queue, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, reservation events disabled", zap.Error(err))
		} else {
			publisher = rabbit
			app.onClose(rabbit.Close)
		}
	}

	service := usecase.NewReservationService(repo.Reservation, hotels, guests, guards, publisher, logger)
	reservationHandler := adaptor.NewReservationHandler(service, logger)

	app.Router = setupRouter(logger)
	wireReservation(app.Router, reservationHandler, config, logger)

	return app
}

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (USER, ADMIN) ====================
	r.Route("/api/v1/reservations", func(r chi.Router) {
		r.Use(middleware.JWTAuth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, utils.RoleUser, utils.RoleAdmin))

		// POST /api/v1/reservations - Book a room for the caller
		r.Post("/", reservationHandler.CreateReservation)

		// GET /api/v1/reservations/{reservation_id}
		r.Get("/{reservation_id}", reservationHandler.GetReservation)
	})
}
