package service

import (
	"context"
	"fmt"

	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	foodRepo repository.FoodRepository
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(foodRepo repository.FoodRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		foodRepo: foodRepo,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// ListFoodItems returns all catalog entries.
func (s *catalogService) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	items, err := s.foodRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list food items")
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	if items == nil {
		items = []model.FoodItem{}
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved food items")

	return items, nil
}

// GetFoodItem retrieves a single catalog entry.
func (s *catalogService) GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	if id == "" {
		return nil, model.ErrFoodNotFound
	}

	item, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id).Msg("failed to get food item")
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("food_id", id).Msg("food item not found")
		return nil, model.ErrFoodNotFound
	}

	return item, nil
}
