package service

import (
	"context"
	"fmt"

	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
)

// savedService implements SavedService.
type savedService struct {
	savedRepo repository.SavedItemRepository
	foodRepo  repository.FoodRepository
	logger    zerolog.Logger
}

// NewSavedService creates a new wish-list service.
func NewSavedService(
	savedRepo repository.SavedItemRepository,
	foodRepo repository.FoodRepository,
	logger zerolog.Logger,
) SavedService {
	return &savedService{
		savedRepo: savedRepo,
		foodRepo:  foodRepo,
		logger:    logger.With().Str("service", "saved").Logger(),
	}
}

// List returns the user's saved items.
func (s *savedService) List(ctx context.Context, userID string) ([]model.SavedItem, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	items, err := s.savedRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to list saved items")
		return nil, fmt.Errorf("failed to list saved items: %w", err)
	}

	if items == nil {
		items = []model.SavedItem{}
	}

	return items, nil
}

// Toggle flips the saved state for (userID, foodID). It deletes first: when
// one or more matching documents existed, they are removed in one batched
// delete and the item is now unsaved. Only when nothing was deleted is a new
// document inserted. Two concurrent toggles can still both insert in a
// narrow window; there is no cross-document transaction to close it.
func (s *savedService) Toggle(ctx context.Context, userID, foodID string) (bool, error) {
	if userID == "" {
		return false, model.ErrNotAuthenticated
	}

	deleted, err := s.savedRepo.DeleteByUserAndFood(ctx, userID, foodID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("uid", userID).
			Str("food_id", foodID).
			Msg("failed to toggle saved item")
		return false, fmt.Errorf("failed to toggle saved item: %w", err)
	}

	if deleted > 0 {
		s.logger.Info().
			Str("uid", userID).
			Str("food_id", foodID).
			Int64("deleted", deleted).
			Msg("item unsaved")
		return false, nil
	}

	food, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", foodID).Msg("failed to load food item for save")
		return false, fmt.Errorf("failed to toggle saved item: %w", err)
	}
	if food == nil {
		return false, model.ErrFoodNotFound
	}

	item := &model.SavedItem{
		UID:      userID,
		FoodID:   food.ID,
		Price:    food.Price,
		Name:     food.Name,
		ImageURL: food.ImageURL,
	}

	if err := s.savedRepo.Insert(ctx, item); err != nil {
		s.logger.Error().
			Err(err).
			Str("uid", userID).
			Str("food_id", foodID).
			Msg("failed to insert saved item")
		return false, fmt.Errorf("failed to toggle saved item: %w", err)
	}

	s.logger.Info().
		Str("uid", userID).
		Str("food_id", foodID).
		Msg("item saved")

	return true, nil
}
