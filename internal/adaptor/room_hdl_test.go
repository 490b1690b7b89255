package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRoomService struct {
	availability *request.AvailabilityRequest
	commits      int
}

func (s *stubRoomService) CreateRoom(ctx context.Context, hotelID int64, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if hotelID != 1 {
		return nil, fmt.Errorf("invalid hotel_id: hotel %d does not exist", hotelID)
	}
	return &response.RoomResponse{ID: 1, HotelID: hotelID, CategoryID: req.CategoryID}, nil
}

func (s *stubRoomService) CommitBooking(ctx context.Context, hotelID, roomID int64, req *request.CommitBookingRequest) (*response.RoomResponse, error) {
	s.commits++
	return &response.RoomResponse{ID: roomID, HotelID: hotelID, BookedDates: req.BookedDates}, nil
}

func (s *stubRoomService) GetRooms(ctx context.Context, hotelID int64) ([]response.RoomResponse, error) {
	return nil, errors.New("connection refused")
}

func (s *stubRoomService) GetAvailableRooms(ctx context.Context, hotelID int64, req *request.AvailabilityRequest) ([]response.RoomResponse, error) {
	s.availability = req
	if req.From > req.To {
		return nil, usecase.ErrInvalidDateRange
	}
	return []response.RoomResponse{{ID: 5}}, nil
}

func roomRouter(svc usecase.RoomService) http.Handler {
	h := NewRoomHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api/v1/hotels/{hotel_id}/rooms", func(r chi.Router) {
		r.Post("/", h.CreateRoom)
		r.Get("/", h.GetRooms)
		r.Get("/availability", h.GetAvailableRooms)
		r.Put("/{room_id}", h.CommitBooking)
	})
	return r
}

func TestRoomHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{"create", http.MethodPost, "/api/v1/hotels/1/rooms/", `{"category_id": 1}`, http.StatusCreated},
		{"create in unknown hotel", http.MethodPost, "/api/v1/hotels/2/rooms/", `{"category_id": 1}`, http.StatusBadRequest},
		{"create without category", http.MethodPost, "/api/v1/hotels/1/rooms/", `{}`, http.StatusBadRequest},
		{"list fails", http.MethodGet, "/api/v1/hotels/1/rooms/", "", http.StatusInternalServerError},
		{"availability", http.MethodGet, "/api/v1/hotels/1/rooms/availability?from=2024-01-10&to=2024-01-12&category_id=1", "", http.StatusOK},
		{"reversed availability", http.MethodGet, "/api/v1/hotels/1/rooms/availability?from=2024-01-12&to=2024-01-10", "", http.StatusBadRequest},
		{"bad category filter", http.MethodGet, "/api/v1/hotels/1/rooms/availability?from=2024-01-10&to=2024-01-12&category_id=x", "", http.StatusBadRequest},
		{"commit", http.MethodPut, "/api/v1/hotels/1/rooms/5", `{"category_id": 1, "booked_dates": ["2024-01-10"]}`, http.StatusOK},
		{"commit without dates", http.MethodPut, "/api/v1/hotels/1/rooms/5", `{"category_id": 1, "booked_dates": []}`, http.StatusBadRequest},
		{"commit on sentinel room", http.MethodPut, "/api/v1/hotels/1/rooms/0", `{"category_id": 1, "booked_dates": ["2024-01-10"]}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			roomRouter(&stubRoomService{}).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestAvailabilityQueryIsPassedThrough(t *testing.T) {
	svc := &stubRoomService{}
	rec := httptest.NewRecorder()
	roomRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/1/rooms/availability?from=2024-01-10&to=2024-01-12&category_id=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &request.AvailabilityRequest{From: "2024-01-10", To: "2024-01-12", CategoryID: 3}, svc.availability)
}

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{fmt.Errorf("%w (b > a)", usecase.ErrInvalidDateRange), http.StatusBadRequest},
		{errors.New("unauthorized: invalid username or password"), http.StatusUnauthorized},
		{errors.New("guest 3 not found"), http.StatusNotFound},
		{errors.New("validation failed: name is required"), http.StatusBadRequest},
		{errors.New("invalid category_id: category 2 does not exist in hotel 1"), http.StatusBadRequest},
		{errors.New(`guest "alice" already exists`), http.StatusBadRequest},
		{errors.New("persist reservation: disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
