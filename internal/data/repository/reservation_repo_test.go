package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-reservation/internal/data/entity"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReservationRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	created := time.Now()

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(int64(7), int64(1), int64(5), int64(1), int64(1), "2700", start, end).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), created))

	repo := NewReservationRepository(mock, zap.NewNop())
	reservation := &entity.Reservation{
		GuestID:    7,
		HotelID:    1,
		RoomID:     5,
		CategoryID: 1,
		OfferID:    1,
		Charges:    decimal.NewFromInt(2700),
		StartDate:  start,
		EndDate:    end,
	}

	require.NoError(t, repo.Create(context.Background(), reservation))
	assert.Equal(t, int64(42), reservation.ID)
	assert.Equal(t, created, reservation.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryCreateFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(int64(0), int64(1), int64(0), int64(0), int64(0), "0", time.Time{}, time.Time{}).
		WillReturnError(errors.New("connection reset"))

	repo := NewReservationRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), &entity.Reservation{HotelID: 1, Charges: decimal.Zero})
	assert.ErrorContains(t, err, "create reservation for hotel 1")
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "guest_id", "hotel_id", "room_id", "category_id", "offer_id", "charges", "start_date", "end_date", "created_at"}

	mock.ExpectQuery("FROM reservations").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(42), int64(7), int64(1), int64(5), int64(1), int64(0), "-150.50", start, end, time.Now()))
	mock.ExpectQuery("FROM reservations").
		WithArgs(int64(43)).
		WillReturnRows(pgxmock.NewRows(columns))

	repo := NewReservationRepository(mock, zap.NewNop())

	got, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("-150.50").Equal(got.Charges))
	assert.Equal(t, int64(0), got.OfferID)

	missing, err := repo.FindByID(context.Background(), 43)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}
