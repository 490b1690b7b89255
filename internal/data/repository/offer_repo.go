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

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	Update(ctx context.Context, offer *entity.Offer) error
	FindByHotelAndCategory(ctx context.Context, hotelID, categoryID int64) ([]*entity.Offer, error)
	FindByID(ctx context.Context, id int64) (*entity.Offer, error)
	Delete(ctx context.Context, hotelID, id int64) error
}

type offerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOfferRepository(db database.PgxIface, log *zap.Logger) OfferRepository {
	return &offerRepository{
		db:  db,
		log: log.With(zap.String("repository", "offer")),
	}
}

const offerColumns = `id, hotel_id, category_id, value::text, created_at, updated_at`

func (r *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	query := `
		INSERT INTO offers (hotel_id, category_id, value)
		VALUES ($1, $2, $3::numeric)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, offer.HotelID, offer.CategoryID, offer.Value.String()).
		Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create offer", zap.Error(err),
			zap.Int64("hotel_id", offer.HotelID), zap.Int64("category_id", offer.CategoryID))
		return fmt.Errorf("create offer for hotel %d: %w", offer.HotelID, err)
	}

	return nil
}

func (r *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	query := `
		UPDATE offers
		SET category_id = $3, value = $4::numeric, updated_at = NOW()
		WHERE id = $1 AND hotel_id = $2
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, offer.ID, offer.HotelID, offer.CategoryID, offer.Value.String()).
		Scan(&offer.CreatedAt, &offer.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("offer %d not found in hotel %d", offer.ID, offer.HotelID)
	}
	if err != nil {
		r.log.Error("Failed to update offer", zap.Error(err), zap.Int64("offer_id", offer.ID))
		return fmt.Errorf("update offer %d: %w", offer.ID, err)
	}

	return nil
}

func (r *offerRepository) FindByHotelAndCategory(ctx context.Context, hotelID, categoryID int64) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + `
		FROM offers
		WHERE hotel_id = $1 AND category_id = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, hotelID, categoryID)
	if err != nil {
		r.log.Error("Failed to find offers", zap.Error(err),
			zap.Int64("hotel_id", hotelID), zap.Int64("category_id", categoryID))
		return nil, fmt.Errorf("find offers of hotel %d: %w", hotelID, err)
	}
	defer rows.Close()

	var offers []*entity.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			r.log.Error("Failed to scan offer", zap.Error(err))
			return nil, err
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + `
		FROM offers
		WHERE id = $1
	`

	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer by ID", zap.Error(err), zap.Int64("offer_id", id))
		return nil, err
	}

	return offer, nil
}

func (r *offerRepository) Delete(ctx context.Context, hotelID, id int64) error {
	query := `DELETE FROM offers WHERE id = $1 AND hotel_id = $2`

	result, err := r.db.Exec(ctx, query, id, hotelID)
	if err != nil {
		r.log.Error("Failed to delete offer", zap.Error(err), zap.Int64("offer_id", id))
		return fmt.Errorf("delete offer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer %d not found in hotel %d", id, hotelID)
	}

	return nil
}

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	var (
		offer entity.Offer
		value string
	)
	if err := row.Scan(
		&offer.ID,
		&offer.HotelID,
		&offer.CategoryID,
		&value,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	var err error
	if offer.Value, err = decimal.NewFromString(value); err != nil {
		return nil, fmt.Errorf("parse offer %d value %q: %w", offer.ID, value, err)
	}
	return &offer, nil
}
