package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func jan(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func TestRoomRepositoryAddBookedDates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dates := []time.Time{jan(10), jan(11), jan(12)}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms SET updated_at").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO room_booked_dates").
		WithArgs(int64(5), dates).
		WillReturnResult(pgxmock.NewResult("INSERT", 3))
	mock.ExpectCommit()

	repo := NewRoomRepository(mock, zap.NewNop())
	require.NoError(t, repo.AddBookedDates(context.Background(), 1, 5, dates))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryAddBookedDatesUnknownRoom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms SET updated_at").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	repo := NewRoomRepository(mock, zap.NewNop())
	err = repo.AddBookedDates(context.Background(), 1, 9, []time.Time{jan(10)})
	assert.EqualError(t, err, "room 9 not found in hotel 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryAddBookedDatesInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms SET updated_at").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO room_booked_dates").
		WithArgs(int64(5), []time.Time{jan(10)}).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	repo := NewRoomRepository(mock, zap.NewNop())
	err = repo.AddBookedDates(context.Background(), 1, 5, []time.Time{jan(10)})
	assert.ErrorContains(t, err, "add booked dates to room 5")
	assert.ErrorContains(t, err, "deadlock detected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryFindByHotel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	columns := []string{"id", "hotel_id", "category_id", "created_at", "updated_at", "booked_dates"}
	mock.ExpectQuery("FROM rooms r").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(5), int64(1), int64(2), now, now, []time.Time{jan(11)}).
			AddRow(int64(6), int64(1), int64(2), now, now, []time.Time{}))

	repo := NewRoomRepository(mock, zap.NewNop())
	rooms, err := repo.FindByHotel(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, []time.Time{jan(11)}, rooms[0].BookedDates)
	assert.Empty(t, rooms[1].BookedDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
