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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	FindByHotel(ctx context.Context, hotelID int64) ([]*entity.Category, error)
	FindByHotelAndID(ctx context.Context, hotelID, id int64) (*entity.Category, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

// numeric columns are exchanged as text to keep decimal precision
const categoryColumns = `id, hotel_id, description, charges::text, created_at, updated_at`

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (hotel_id, description, charges)
		VALUES ($1, $2, $3::numeric)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, category.HotelID, category.Description, category.Charges.String()).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create category", zap.Error(err), zap.Int64("hotel_id", category.HotelID))
		return fmt.Errorf("create category for hotel %d: %w", category.HotelID, err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET description = $3, charges = $4::numeric, updated_at = NOW()
		WHERE id = $1 AND hotel_id = $2
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, category.ID, category.HotelID, category.Description, category.Charges.String()).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("category %d not found in hotel %d", category.ID, category.HotelID)
	}
	if err != nil {
		r.log.Error("Failed to update category", zap.Error(err), zap.Int64("category_id", category.ID))
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) FindByHotel(ctx context.Context, hotelID int64) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE hotel_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find categories", zap.Error(err), zap.Int64("hotel_id", hotelID))
		return nil, fmt.Errorf("find categories of hotel %d: %w", hotelID, err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan category", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) FindByHotelAndID(ctx context.Context, hotelID, id int64) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = $1 AND hotel_id = $2
	`

	category, err := scanCategory(r.db.QueryRow(ctx, query, id, hotelID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category", zap.Error(err),
			zap.Int64("hotel_id", hotelID), zap.Int64("category_id", id))
		return nil, err
	}

	return category, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var (
		category entity.Category
		charges  string
	)
	if err := row.Scan(
		&category.ID,
		&category.HotelID,
		&category.Description,
		&charges,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	var err error
	if category.Charges, err = decimal.NewFromString(charges); err != nil {
		return nil, fmt.Errorf("parse category %d charges %q: %w", category.ID, charges, err)
	}
	return &category, nil
}
