package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RoomRepository owns the availability index: the booked dates of every room.
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, hotelID, id int64) (*entity.Room, error)
	// FindByHotel returns the rooms of a hotel; categoryID 0 means any category.
	FindByHotel(ctx context.Context, hotelID, categoryID int64) ([]*entity.Room, error)
	// AddBookedDates unions dates into the room's booked set.
	AddBookedDates(ctx context.Context, hotelID, roomID int64, dates []time.Time) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomSelect = `
	SELECT r.id, r.hotel_id, r.category_id, r.created_at, r.updated_at,
		COALESCE(array_agg(b.booked_date ORDER BY b.booked_date) FILTER (WHERE b.booked_date IS NOT NULL), '{}'::date[])
	FROM rooms r
	LEFT JOIN room_booked_dates b ON b.room_id = r.id
`

const insertBookedDates = `
	INSERT INTO room_booked_dates (room_id, booked_date)
	SELECT $1, d FROM unnest($2::date[]) AS d
	ON CONFLICT (room_id, booked_date) DO NOTHING
`

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create room: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO rooms (hotel_id, category_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(ctx, query, room.HotelID, room.CategoryID).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		r.log.Error("Failed to create room", zap.Error(err), zap.Int64("hotel_id", room.HotelID))
		return fmt.Errorf("create room for hotel %d: %w", room.HotelID, err)
	}

	if len(room.BookedDates) > 0 {
		if _, err := tx.Exec(ctx, insertBookedDates, room.ID, room.BookedDates); err != nil {
			r.log.Error("Failed to store booked dates", zap.Error(err), zap.Int64("room_id", room.ID))
			return fmt.Errorf("store booked dates of room %d: %w", room.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create room: %w", err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, hotelID, id int64) (*entity.Room, error) {
	query := roomSelect + `
		WHERE r.id = $1 AND r.hotel_id = $2
		GROUP BY r.id
	`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id, hotelID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room", zap.Error(err), zap.Int64("room_id", id))
		return nil, fmt.Errorf("find room %d: %w", id, err)
	}

	return room, nil
}

func (r *roomRepository) FindByHotel(ctx context.Context, hotelID, categoryID int64) ([]*entity.Room, error) {
	query := roomSelect + `
		WHERE r.hotel_id = $1 AND ($2::bigint = 0 OR r.category_id = $2::bigint)
		GROUP BY r.id
		ORDER BY r.id
	`

	rows, err := r.db.Query(ctx, query, hotelID, categoryID)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err),
			zap.Int64("hotel_id", hotelID), zap.Int64("category_id", categoryID))
		return nil, fmt.Errorf("find rooms of hotel %d: %w", hotelID, err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room", zap.Error(err))
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) AddBookedDates(ctx context.Context, hotelID, roomID int64, dates []time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking room %d: %w", roomID, err)
	}
	defer tx.Rollback(ctx)

	// Lock the room row so concurrent commits on the same room serialize
	result, err := tx.Exec(ctx, `UPDATE rooms SET updated_at = NOW() WHERE id = $1 AND hotel_id = $2`, roomID, hotelID)
	if err != nil {
		r.log.Error("Failed to lock room", zap.Error(err), zap.Int64("room_id", roomID))
		return fmt.Errorf("lock room %d: %w", roomID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found in hotel %d", roomID, hotelID)
	}

	if _, err := tx.Exec(ctx, insertBookedDates, roomID, dates); err != nil {
		r.log.Error("Failed to add booked dates", zap.Error(err),
			zap.Int64("room_id", roomID), zap.Int("dates", len(dates)))
		return fmt.Errorf("add booked dates to room %d: %w", roomID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking room %d: %w", roomID, err)
	}

	return nil
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.CategoryID,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.BookedDates,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
