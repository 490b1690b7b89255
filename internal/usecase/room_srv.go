package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, hotelID int64, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	CommitBooking(ctx context.Context, hotelID, roomID int64, req *request.CommitBookingRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, hotelID int64) ([]response.RoomResponse, error)
	GetAvailableRooms(ctx context.Context, hotelID int64, req *request.AvailabilityRequest) ([]response.RoomResponse, error)
}

type roomService struct {
	rooms      repository.RoomRepository
	categories repository.CategoryRepository
	hotels     repository.HotelRepository
	log        *zap.Logger
}

func NewRoomService(
	rooms repository.RoomRepository,
	categories repository.CategoryRepository,
	hotels repository.HotelRepository,
	log *zap.Logger,
) RoomService {
	return &roomService{
		rooms:      rooms,
		categories: categories,
		hotels:     hotels,
		log:        log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, hotelID int64, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booked, err := parseDates(req.BookedDates)
	if err != nil {
		return nil, err
	}

	if err := requireHotel(ctx, s.hotels, hotelID); err != nil {
		return nil, err
	}
	if err := requireCategory(ctx, s.categories, hotelID, req.CategoryID); err != nil {
		return nil, err
	}

	room := &entity.Room{
		HotelID:     hotelID,
		CategoryID:  req.CategoryID,
		BookedDates: booked,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.Int64("hotel_id", hotelID),
		zap.Int64("room_id", room.ID),
		zap.Int64("category_id", room.CategoryID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// CommitBooking adds the requested dates to the room's booked set. Dates
// already booked are kept once; the commit does not check availability.
func (s *roomService) CommitBooking(ctx context.Context, hotelID, roomID int64, req *request.CommitBookingRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	dates, err := parseDates(req.BookedDates)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, hotelID, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", roomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found in hotel %d", roomID, hotelID)
	}
	if req.CategoryID != 0 && room.CategoryID != req.CategoryID {
		return nil, fmt.Errorf("room %d not found in category %d", roomID, req.CategoryID)
	}

	if err := s.rooms.AddBookedDates(ctx, hotelID, roomID, dates); err != nil {
		return nil, err
	}

	updated, err := s.rooms.FindByID(ctx, hotelID, roomID)
	if err != nil {
		return nil, fmt.Errorf("reload room %d: %w", roomID, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("room %d not found in hotel %d", roomID, hotelID)
	}

	s.log.Info("Booking committed",
		zap.Int64("hotel_id", hotelID),
		zap.Int64("room_id", roomID),
		zap.Strings("dates", req.BookedDates))

	resp := response.RoomToResponse(updated)
	return &resp, nil
}

func (s *roomService) GetRooms(ctx context.Context, hotelID int64) ([]response.RoomResponse, error) {
	if err := requireHotel(ctx, s.hotels, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.FindByHotel(ctx, hotelID, 0)
	if err != nil {
		return nil, fmt.Errorf("get rooms of hotel %d: %w", hotelID, err)
	}

	return roomsToResponse(rooms), nil
}

// GetAvailableRooms lists the rooms of the hotel with no booked date inside
// [from, to], optionally restricted to one category.
func (s *roomService) GetAvailableRooms(ctx context.Context, hotelID int64, req *request.AvailabilityRequest) ([]response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	from, err := utils.ParseDate(req.From, "from")
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDate(req.To, "to")
	if err != nil {
		return nil, err
	}
	dates, err := ExpandDateRange(from, to)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.FindByHotel(ctx, hotelID, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get rooms of hotel %d: %w", hotelID, err)
	}

	available := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsAvailable(dates) {
			available = append(available, room)
		}
	}

	s.log.Debug("Availability computed",
		zap.Int64("hotel_id", hotelID),
		zap.Int64("category_id", req.CategoryID),
		zap.Int("rooms", len(rooms)),
		zap.Int("available", len(available)))

	return roomsToResponse(available), nil
}

func roomsToResponse(rooms []*entity.Room) []response.RoomResponse {
	out := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = response.RoomToResponse(room)
	}
	return out
}

func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := utils.ParseDate(v, "booked_dates")
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
