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

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	UpdateGuest(ctx context.Context, id int64, req *request.UpdateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, id int64) (*response.GuestResponse, error)
	GetGuestByName(ctx context.Context, name string) (*response.GuestResponse, error)
}

type guestService struct {
	repo repository.GuestRepository
	log  *zap.Logger
}

func NewGuestService(repo repository.GuestRepository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Guest names double as login usernames
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check guest name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("guest %q already exists", req.Name)
	}

	guest := &entity.Guest{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	}
	if err := s.repo.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.log.Info("Guest created", zap.Int64("guest_id", guest.ID), zap.String("name", guest.Name))

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) UpdateGuest(ctx context.Context, id int64, req *request.UpdateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check guest name: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("guest %q already exists", req.Name)
	}

	guest := &entity.Guest{
		Base:    entity.Base{ID: id},
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	}
	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, err
	}

	s.log.Info("Guest updated", zap.Int64("guest_id", id))

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, id int64) (*response.GuestResponse, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guest %d: %w", id, err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %d not found", id)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByName(ctx context.Context, name string) (*response.GuestResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("invalid guest_name: must not be empty")
	}

	guest, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get guest %q: %w", name, err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %q not found", name)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}
