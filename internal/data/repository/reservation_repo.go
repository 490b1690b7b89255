package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id int64) (*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (guest_id, hotel_id, room_id, category_id, offer_id, charges, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		reservation.GuestID,
		reservation.HotelID,
		reservation.RoomID,
		reservation.CategoryID,
		reservation.OfferID,
		reservation.Charges.String(),
		reservation.StartDate,
		reservation.EndDate,
	).Scan(&reservation.ID, &reservation.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.Int64("hotel_id", reservation.HotelID),
			zap.Int64("room_id", reservation.RoomID),
			zap.Int64("guest_id", reservation.GuestID),
		)
		return fmt.Errorf("create reservation for hotel %d: %w", reservation.HotelID, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `
		SELECT id, guest_id, hotel_id, room_id, category_id, offer_id, charges::text, start_date, end_date, created_at
		FROM reservations
		WHERE id = $1
	`

	var (
		reservation entity.Reservation
		charges     string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.GuestID,
		&reservation.HotelID,
		&reservation.RoomID,
		&reservation.CategoryID,
		&reservation.OfferID,
		&charges,
		&reservation.StartDate,
		&reservation.EndDate,
		&reservation.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID", zap.Error(err), zap.Int64("reservation_id", id))
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	if reservation.Charges, err = decimal.NewFromString(charges); err != nil {
		return nil, fmt.Errorf("parse reservation %d charges %q: %w", id, charges, err)
	}

	return &reservation, nil
}
