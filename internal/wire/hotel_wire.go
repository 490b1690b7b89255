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

type hotelHandlers struct {
	Hotel    *adaptor.HotelHandler
	Category *adaptor.CategoryHandler
	Offer    *adaptor.OfferHandler
	Room     *adaptor.RoomHandler
}

// WiringHotel builds the hotel service: hotels, categories, offers and the
// room availability index.
func WiringHotel(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	handlers := hotelHandlers{
		Hotel:    adaptor.NewHotelHandler(usecase.NewHotelService(repo.Hotel, logger), logger),
		Category: adaptor.NewCategoryHandler(usecase.NewCategoryService(repo.Category, repo.Hotel, logger), logger),
		Offer:    adaptor.NewOfferHandler(usecase.NewOfferService(repo.Offer, repo.Category, repo.Hotel, logger), logger),
		Room:     adaptor.NewRoomHandler(usecase.NewRoomService(repo.Room, repo.Category, repo.Hotel, logger), logger),
	}

	r := setupRouter(logger)
	wireHotel(r, handlers, config, logger)

	return &App{Router: r}
}

func wireHotel(
	r chi.Router,
	h hotelHandlers,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/v1/hotels", func(r chi.Router) {
		r.Use(middleware.JWTAuth(config.JWT.Secret, log))

		// ==================== USER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, utils.RoleUser, utils.RoleAdmin))

			r.Get("/", h.Hotel.GetHotels)
			r.Get("/{hotel_id}/categories", h.Category.GetCategories)
			r.Get("/{hotel_id}/categories/{category_id}", h.Category.GetCategory)
			r.Get("/{hotel_id}/offers", h.Offer.GetOffers)
			r.Get("/{hotel_id}/offers/{offer_id}", h.Offer.GetOffer)
			r.Get("/{hotel_id}/rooms", h.Room.GetRooms)
			r.Get("/{hotel_id}/rooms/availability", h.Room.GetAvailableRooms)

			// PUT /api/v1/hotels/{hotel_id}/rooms/{room_id} - Commit booked dates (called by reservation)
			r.Put("/{hotel_id}/rooms/{room_id}", h.Room.CommitBooking)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, utils.RoleAdmin))

			r.Post("/", h.Hotel.CreateHotel)
			r.Put("/{hotel_id}", h.Hotel.UpdateHotel)

			r.Post("/{hotel_id}/categories", h.Category.CreateCategory)
			r.Put("/{hotel_id}/categories/{category_id}", h.Category.UpdateCategory)

			r.Post("/{hotel_id}/offers", h.Offer.CreateOffer)
			r.Put("/{hotel_id}/offers/{offer_id}", h.Offer.UpdateOffer)
			r.Delete("/{hotel_id}/offers/{offer_id}", h.Offer.DeleteOffer)

			r.Post("/{hotel_id}/rooms", h.Room.CreateRoom)
		})
	})
}
