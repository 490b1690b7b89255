package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var guestColumns = []string{"id", "name", "email", "contact", "created_at", "updated_at"}

func TestCreateGuest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, contact").
		WithArgs("alice").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO guests").
		WithArgs("alice", "alice@example.com", int64(5551234)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	svc := NewGuestService(repository.NewGuestRepository(mock, zap.NewNop()), zap.NewNop())
	guest, err := svc.CreateGuest(context.Background(), &request.CreateGuestRequest{
		Name:    "alice",
		Email:   "alice@example.com",
		Contact: 5551234,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), guest.ID)
	assert.Equal(t, "alice", guest.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGuestDuplicateName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, contact").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(guestColumns).AddRow(int64(1), "alice", "a@example.com", int64(0), now, now))

	svc := NewGuestService(repository.NewGuestRepository(mock, zap.NewNop()), zap.NewNop())
	_, err = svc.CreateGuest(context.Background(), &request.CreateGuestRequest{Name: "alice", Email: "alice@example.com"})
	assert.ErrorContains(t, err, "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGuestValidation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	svc := NewGuestService(repository.NewGuestRepository(mock, zap.NewNop()), zap.NewNop())
	_, err = svc.CreateGuest(context.Background(), &request.CreateGuestRequest{Name: "alice", Email: "not-an-email"})
	assert.ErrorContains(t, err, "validation failed")
}

func TestGetGuestByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, contact").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(guestColumns).AddRow(int64(3), "alice", "a@example.com", int64(42), now, now))
	mock.ExpectQuery("SELECT id, name, email, contact").
		WithArgs("bob").
		WillReturnError(pgx.ErrNoRows)

	svc := NewGuestService(repository.NewGuestRepository(mock, zap.NewNop()), zap.NewNop())

	guest, err := svc.GetGuestByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), guest.ID)

	_, err = svc.GetGuestByName(context.Background(), "bob")
	assert.ErrorContains(t, err, `guest "bob" not found`)

	_, err = svc.GetGuestByName(context.Background(), "")
	assert.ErrorContains(t, err, "invalid guest_name")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGuestByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, email, contact").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	svc := NewGuestService(repository.NewGuestRepository(mock, zap.NewNop()), zap.NewNop())
	_, err = svc.GetGuestByID(context.Background(), 9)
	assert.ErrorContains(t, err, "guest 9 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
