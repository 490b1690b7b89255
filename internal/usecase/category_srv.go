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

type CategoryService interface {
	CreateCategory(ctx context.Context, hotelID int64, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, hotelID, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetCategories(ctx context.Context, hotelID int64) ([]response.CategoryResponse, error)
	GetCategory(ctx context.Context, hotelID, id int64) (*response.CategoryResponse, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	hotels     repository.HotelRepository
	log        *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, hotels repository.HotelRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		hotels:     hotels,
		log:        log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) validate(req *request.CategoryRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.Charges.IsNegative() {
		return fmt.Errorf("invalid charges: must not be negative")
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, hotelID int64, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := requireHotel(ctx, s.hotels, hotelID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		HotelID:     hotelID,
		Description: req.Description,
		Charges:     req.Charges,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.Int64("hotel_id", hotelID),
		zap.Int64("category_id", category.ID),
		zap.String("charges", category.Charges.String()))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, hotelID, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Base:        entity.Base{ID: id},
		HotelID:     hotelID,
		Description: req.Description,
		Charges:     req.Charges,
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetCategories(ctx context.Context, hotelID int64) ([]response.CategoryResponse, error) {
	if err := requireHotel(ctx, s.hotels, hotelID); err != nil {
		return nil, err
	}

	categories, err := s.categories.FindByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get categories of hotel %d: %w", hotelID, err)
	}

	out := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = response.CategoryToResponse(category)
	}
	return out, nil
}

func (s *categoryService) GetCategory(ctx context.Context, hotelID, id int64) (*response.CategoryResponse, error) {
	category, err := s.categories.FindByHotelAndID(ctx, hotelID, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d not found in hotel %d", id, hotelID)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func requireCategory(ctx context.Context, categories repository.CategoryRepository, hotelID, categoryID int64) error {
	category, err := categories.FindByHotelAndID(ctx, hotelID, categoryID)
	if err != nil {
		return fmt.Errorf("check category %d: %w", categoryID, err)
	}
	if category == nil {
		return fmt.Errorf("invalid category_id: category %d does not exist in hotel %d", categoryID, hotelID)
	}
	return nil
}
