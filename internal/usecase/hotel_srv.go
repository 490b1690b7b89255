package usecase

import (
	"context"
	"fmt"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, id int64, req *request.HotelRequest) (*response.HotelResponse, error)
	GetHotels(ctx context.Context) ([]response.HotelResponse, error)
}

type hotelService struct {
	repo repository.HotelRepository
	log  *zap.Logger
}

func NewHotelService(repo repository.HotelRepository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel := &entity.Hotel{Address: req.Address, Contact: req.Contact}
	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created", zap.Int64("hotel_id", hotel.ID))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, id int64, req *request.HotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel := &entity.Hotel{Base: entity.Base{ID: id}, Address: req.Address, Contact: req.Contact}
	if err := s.repo.Update(ctx, hotel); err != nil {
		return nil, err
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetHotels(ctx context.Context) ([]response.HotelResponse, error) {
	hotels, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get hotels: %w", err)
	}

	out := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		out[i] = response.HotelToResponse(hotel)
	}
	return out, nil
}

// requireHotel is shared by the services nested under a hotel.
func requireHotel(ctx context.Context, hotels repository.HotelRepository, hotelID int64) error {
	hotel, err := hotels.FindByID(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("check hotel %d: %w", hotelID, err)
	}
	if hotel == nil {
		return fmt.Errorf("invalid hotel_id: hotel %d does not exist", hotelID)
	}
	return nil
}
