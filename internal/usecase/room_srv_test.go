package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/dto/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoomFixture() (RoomService, *memRooms) {
	hotels := newMemHotels(1)
	categories := &memCategories{categories: []*entity.Category{
		{Base: entity.Base{ID: 1}, HotelID: 1, Charges: decimal.NewFromInt(1000)},
		{Base: entity.Base{ID: 2}, HotelID: 1, Charges: decimal.NewFromInt(500)},
	}}
	rooms := &memRooms{rooms: []*entity.Room{
		{Base: entity.Base{ID: 5}, HotelID: 1, CategoryID: 1},
		{Base: entity.Base{ID: 6}, HotelID: 1, CategoryID: 1, BookedDates: []time.Time{jan(11)}},
		{Base: entity.Base{ID: 7}, HotelID: 1, CategoryID: 2},
	}}
	return NewRoomService(rooms, categories, hotels, zap.NewNop()), rooms
}

func TestGetAvailableRoomsExcludesIntersectingRooms(t *testing.T) {
	svc, _ := newRoomFixture()

	tests := []struct {
		name string
		req  request.AvailabilityRequest
		want []int64
	}{
		{
			name: "overlap excludes booked room",
			req:  request.AvailabilityRequest{From: "2024-01-10", To: "2024-01-12", CategoryID: 1},
			want: []int64{5},
		},
		{
			name: "disjoint range keeps every room of the category",
			req:  request.AvailabilityRequest{From: "2024-01-12", To: "2024-01-14", CategoryID: 1},
			want: []int64{5, 6},
		},
		{
			name: "category zero means any category",
			req:  request.AvailabilityRequest{From: "2024-01-11", To: "2024-01-11"},
			want: []int64{5, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := svc.GetAvailableRooms(context.Background(), 1, &tt.req)
			require.NoError(t, err)

			var ids []int64
			for _, r := range rooms {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetAvailableRoomsRejectsReversedRange(t *testing.T) {
	svc, _ := newRoomFixture()

	_, err := svc.GetAvailableRooms(context.Background(), 1,
		&request.AvailabilityRequest{From: "2024-01-12", To: "2024-01-10"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCommitBookingUnionsDates(t *testing.T) {
	svc, rooms := newRoomFixture()

	resp, err := svc.CommitBooking(context.Background(), 1, 6, &request.CommitBookingRequest{
		CategoryID:  1,
		BookedDates: []string{"2024-01-10", "2024-01-11", "2024-01-12"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-11", "2024-01-10", "2024-01-12"}, resp.BookedDates)
	assert.Len(t, rooms.rooms[1].BookedDates, 3)
}

func TestCommitBookingUnknownRoom(t *testing.T) {
	svc, _ := newRoomFixture()

	_, err := svc.CommitBooking(context.Background(), 1, 0, &request.CommitBookingRequest{
		CategoryID:  1,
		BookedDates: []string{"2024-01-10"},
	})
	assert.ErrorContains(t, err, "room 0 not found in hotel 1")

	_, err = svc.CommitBooking(context.Background(), 1, 7, &request.CommitBookingRequest{
		CategoryID:  1,
		BookedDates: []string{"2024-01-10"},
	})
	assert.ErrorContains(t, err, "not found in category 1")
}

func TestCommitBookingRequiresDates(t *testing.T) {
	svc, _ := newRoomFixture()

	_, err := svc.CommitBooking(context.Background(), 1, 5, &request.CommitBookingRequest{CategoryID: 1})
	assert.ErrorContains(t, err, "validation failed")
}

func TestCreateRoomValidatesParents(t *testing.T) {
	svc, _ := newRoomFixture()

	_, err := svc.CreateRoom(context.Background(), 9, &request.CreateRoomRequest{CategoryID: 1})
	assert.ErrorContains(t, err, "hotel 9 does not exist")

	_, err = svc.CreateRoom(context.Background(), 1, &request.CreateRoomRequest{CategoryID: 3})
	assert.ErrorContains(t, err, "category 3 does not exist")

	room, err := svc.CreateRoom(context.Background(), 1, &request.CreateRoomRequest{
		CategoryID:  2,
		BookedDates: []string{"2024-02-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), room.ID)
	assert.Equal(t, []string{"2024-02-01"}, room.BookedDates)
}
