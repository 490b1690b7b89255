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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	Update(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id int64) (*entity.Guest, error)
	FindByName(ctx context.Context, name string) (*entity.Guest, error)
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (name, email, contact)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, guest.Name, guest.Email, guest.Contact).
		Scan(&guest.ID, &guest.CreatedAt, &guest.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create guest", zap.Error(err), zap.String("name", guest.Name))
		return fmt.Errorf("create guest %s: %w", guest.Name, err)
	}

	return nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, email = $3, contact = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, guest.ID, guest.Name, guest.Email, guest.Contact).
		Scan(&guest.CreatedAt, &guest.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("guest %d not found", guest.ID)
	}
	if err != nil {
		r.log.Error("Failed to update guest", zap.Error(err), zap.Int64("guest_id", guest.ID))
		return fmt.Errorf("update guest %d: %w", guest.ID, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id int64) (*entity.Guest, error) {
	query := `
		SELECT id, name, email, contact, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	return r.findOne(ctx, query, id)
}

func (r *guestRepository) FindByName(ctx context.Context, name string) (*entity.Guest, error) {
	query := `
		SELECT id, name, email, contact, created_at, updated_at
		FROM guests
		WHERE name = $1
	`

	return r.findOne(ctx, query, name)
}

func (r *guestRepository) findOne(ctx context.Context, query string, arg any) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Contact,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find guest %v: %w", arg, err)
	}

	return &guest, nil
}
