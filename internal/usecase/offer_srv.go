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

type OfferService interface {
	CreateOffer(ctx context.Context, hotelID int64, req *request.OfferRequest) (*response.OfferResponse, error)
	UpdateOffer(ctx context.Context, hotelID, id int64, req *request.OfferRequest) (*response.OfferResponse, error)
	GetOffers(ctx context.Context, hotelID, categoryID int64) ([]response.OfferResponse, error)
	GetOffer(ctx context.Context, hotelID, id, categoryID int64) (*response.OfferResponse, error)
	DeleteOffer(ctx context.Context, hotelID, id int64) error
}

type offerService struct {
	offers     repository.OfferRepository
	categories repository.CategoryRepository
	hotels     repository.HotelRepository
	log        *zap.Logger
}

func NewOfferService(
	offers repository.OfferRepository,
	categories repository.CategoryRepository,
	hotels repository.HotelRepository,
	log *zap.Logger,
) OfferService {
	return &offerService{
		offers:     offers,
		categories: categories,
		hotels:     hotels,
		log:        log.With(zap.String("service", "offer")),
	}
}

func (s *offerService) validate(ctx context.Context, hotelID int64, req *request.OfferRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.Value.IsNegative() {
		return fmt.Errorf("invalid value: must not be negative")
	}
	if err := requireHotel(ctx, s.hotels, hotelID); err != nil {
		return err
	}
	return requireCategory(ctx, s.categories, hotelID, req.CategoryID)
}

func (s *offerService) CreateOffer(ctx context.Context, hotelID int64, req *request.OfferRequest) (*response.OfferResponse, error) {
	if err := s.validate(ctx, hotelID, req); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		HotelID:    hotelID,
		CategoryID: req.CategoryID,
		Value:      req.Value,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.log.Info("Offer created",
		zap.Int64("hotel_id", hotelID),
		zap.Int64("category_id", offer.CategoryID),
		zap.Int64("offer_id", offer.ID),
		zap.String("value", offer.Value.String()))

	resp := response.OfferToResponse(offer)
	return &resp, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, hotelID, id int64, req *request.OfferRequest) (*response.OfferResponse, error) {
	if err := s.validate(ctx, hotelID, req); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		Base:       entity.Base{ID: id},
		HotelID:    hotelID,
		CategoryID: req.CategoryID,
		Value:      req.Value,
	}
	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, err
	}

	resp := response.OfferToResponse(offer)
	return &resp, nil
}

func (s *offerService) GetOffers(ctx context.Context, hotelID, categoryID int64) ([]response.OfferResponse, error) {
	offers, err := s.offers.FindByHotelAndCategory(ctx, hotelID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get offers of hotel %d: %w", hotelID, err)
	}

	out := make([]response.OfferResponse, len(offers))
	for i, offer := range offers {
		out[i] = response.OfferToResponse(offer)
	}
	return out, nil
}

// GetOffer only returns the offer when it belongs to both the hotel and the
// category; anything else is reported as not found.
func (s *offerService) GetOffer(ctx context.Context, hotelID, id, categoryID int64) (*response.OfferResponse, error) {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer %d: %w", id, err)
	}
	if offer == nil || offer.HotelID != hotelID || offer.CategoryID != categoryID {
		return nil, fmt.Errorf("offer %d not found for hotel %d and category %d", id, hotelID, categoryID)
	}

	resp := response.OfferToResponse(offer)
	return &resp, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, hotelID, id int64) error {
	if err := s.offers.Delete(ctx, hotelID, id); err != nil {
		return err
	}

	s.log.Info("Offer deleted", zap.Int64("hotel_id", hotelID), zap.Int64("offer_id", id))
	return nil
}
