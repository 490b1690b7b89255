package repository

import (
	"hotel-reservation/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the stores; each service only touches its own tables.
type Repository struct {
	Guest       GuestRepository
	Hotel       HotelRepository
	Category    CategoryRepository
	Offer       OfferRepository
	Room        RoomRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Guest:       NewGuestRepository(db, log),
		Hotel:       NewHotelRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Offer:       NewOfferRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
