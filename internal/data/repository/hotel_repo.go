package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	Update(ctx context.Context, hotel *entity.Hotel) error
	FindAll(ctx context.Context) ([]*entity.Hotel, error)
	FindByID(ctx context.Context, id int64) (*entity.Hotel, error)
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (address, contact)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, hotel.Address, hotel.Contact).
		Scan(&hotel.ID, &hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create hotel", zap.Error(err))
		return fmt.Errorf("create hotel: %w", err)
	}

	return nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET address = $2, contact = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, hotel.ID, hotel.Address, hotel.Contact).
		Scan(&hotel.CreatedAt, &hotel.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("hotel %d not found", hotel.ID)
	}
	if err != nil {
		r.log.Error("Failed to update hotel", zap.Error(err), zap.Int64("hotel_id", hotel.ID))
		return fmt.Errorf("update hotel %d: %w", hotel.ID, err)
	}

	return nil
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	query := `
		SELECT id, address, contact, created_at, updated_at
		FROM hotels
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find hotels", zap.Error(err))
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		var hotel entity.Hotel
		if err := rows.Scan(&hotel.ID, &hotel.Address, &hotel.Contact, &hotel.CreatedAt, &hotel.UpdatedAt); err != nil {
			r.log.Error("Failed to scan hotel", zap.Error(err))
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	query := `
		SELECT id, address, contact, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	var hotel entity.Hotel
	err := r.db.QueryRow(ctx, query, id).
		Scan(&hotel.ID, &hotel.Address, &hotel.Contact, &hotel.CreatedAt, &hotel.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID", zap.Error(err), zap.Int64("hotel_id", id))
		return nil, fmt.Errorf("find hotel by ID %d: %w", id, err)
	}

	return &hotel, nil
}
