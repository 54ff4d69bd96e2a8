package service

import (
	"context"
	"fmt"

	"chopnow/internal/model"
	"chopnow/internal/repository"
	"chopnow/internal/tracker"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	foodRepo repository.FoodRepository
	userRepo repository.UserRepository
	added    tracker.AddedItems
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	foodRepo repository.FoodRepository,
	userRepo repository.UserRepository,
	added tracker.AddedItems,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo: cartRepo,
		foodRepo: foodRepo,
		userRepo: userRepo,
		added:    added,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// ComputeTotal returns the sum of price × quantity across all lines. Pure:
// calling it twice on the same snapshot yields the same result. Price and
// quantity have already been coerced to numbers at the decode boundary.
func ComputeTotal(lines []model.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// AddItem creates a new cart line with quantity one. Repeated adds for the
// same food id create additional lines; the store enforces no uniqueness.
func (s *cartService) AddItem(ctx context.Context, userID, foodID string) (*model.CartLine, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	food, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", foodID).Msg("failed to load food item")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if food == nil {
		s.logger.Debug().Str("food_id", foodID).Msg("food item not found")
		return nil, model.ErrFoodNotFound
	}

	line := &model.CartLine{
		UID:      userID,
		FoodID:   food.ID,
		Quantity: 1,
		Price:    food.Price,
		Name:     food.Name,
		ImageURL: food.ImageURL,
	}

	if err := s.cartRepo.Insert(ctx, line); err != nil {
		s.logger.Error().
			Err(err).
			Str("uid", userID).
			Str("food_id", foodID).
			Msg("failed to insert cart line")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	// Best-effort: the added-items set is a convenience flag, never a reason
	// to fail the add.
	if err := s.added.Add(ctx, userID, food.ID); err != nil {
		s.logger.Warn().Err(err).Str("food_id", food.ID).Msg("added-items tracking skipped")
	}

	s.logger.Info().
		Str("uid", userID).
		Str("food_id", food.ID).
		Str("line_id", line.ID.Hex()).
		Msg("item added to cart")

	return line, nil
}

// List returns the user's cart lines and the computed total.
func (s *cartService) List(ctx context.Context, userID string) (*model.CartResponse, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	lines, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to list cart lines")
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}

	if lines == nil {
		lines = []model.CartLine{}
	}

	return &model.CartResponse{
		Items:      lines,
		TotalPrice: ComputeTotal(lines),
	}, nil
}

// ChangeQuantity applies a delta to the named line's quantity. Reaching zero
// or below deletes the line; the total is recomputed afterwards.
func (s *cartService) ChangeQuantity(ctx context.Context, userID, lineID string, delta int) (*model.CartResponse, error) {
	line, err := s.lineForUser(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}

	newQuantity := line.Quantity + delta
	if newQuantity <= 0 {
		// The quantity clamp is enforced before any recompute: a zero
		// quantity means the line goes away, never a zero-quantity record.
		if err := s.cartRepo.Delete(ctx, lineID); err != nil {
			s.logger.Error().Err(err).Str("line_id", lineID).Msg("failed to delete exhausted cart line")
			return nil, fmt.Errorf("failed to change quantity: %w", err)
		}
		if err := s.added.Remove(ctx, userID, line.FoodID); err != nil {
			s.logger.Warn().Err(err).Str("food_id", line.FoodID).Msg("added-items tracking skipped")
		}
	} else {
		if err := s.cartRepo.UpdateQuantity(ctx, lineID, newQuantity); err != nil {
			s.logger.Error().
				Err(err).
				Str("line_id", lineID).
				Int("quantity", newQuantity).
				Msg("failed to update cart line quantity")
			return nil, fmt.Errorf("failed to change quantity: %w", err)
		}
	}

	return s.List(ctx, userID)
}

// RemoveItem deletes a line from the store and returns the recomputed cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, lineID string) (*model.CartResponse, error) {
	line, err := s.lineForUser(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Delete(ctx, lineID); err != nil {
		s.logger.Error().Err(err).Str("line_id", lineID).Msg("failed to remove cart line")
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	if err := s.added.Remove(ctx, userID, line.FoodID); err != nil {
		s.logger.Warn().Err(err).Str("food_id", line.FoodID).Msg("added-items tracking skipped")
	}

	s.logger.Info().
		Str("uid", userID).
		Str("line_id", lineID).
		Msg("item removed from cart")

	return s.List(ctx, userID)
}

// RemoveFood deletes every cart line carrying the given food id, using the
// store's batched delete, and returns the recomputed cart. The food id is
// also dropped from the added-items set.
func (s *cartService) RemoveFood(ctx context.Context, userID, foodID string) (*model.CartResponse, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	deleted, err := s.cartRepo.DeleteByUserAndFood(ctx, userID, foodID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Str("food_id", foodID).Msg("failed to remove food from cart")
		return nil, fmt.Errorf("failed to remove food: %w", err)
	}
	if deleted == 0 {
		return nil, model.ErrCartLineNotFound
	}

	if err := s.added.Remove(ctx, userID, foodID); err != nil {
		s.logger.Warn().Err(err).Str("food_id", foodID).Msg("added-items tracking skipped")
	}

	s.logger.Info().
		Str("uid", userID).
		Str("food_id", foodID).
		Int64("lines_deleted", deleted).
		Msg("food removed from cart")

	return s.List(ctx, userID)
}

// AddedFoodIDs returns the set of food ids the user has added to the cart.
func (s *cartService) AddedFoodIDs(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	ids, err := s.added.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list added items: %w", err)
	}

	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

// HasAdded reports whether the user has previously added the food id to the
// cart, per the tracked set. Detail views use this for the single-item case
// instead of fetching the whole set.
func (s *cartService) HasAdded(ctx context.Context, userID, foodID string) (bool, error) {
	if userID == "" {
		return false, model.ErrNotAuthenticated
	}

	added, err := s.added.Contains(ctx, userID, foodID)
	if err != nil {
		return false, fmt.Errorf("failed to check added item: %w", err)
	}

	return added, nil
}

// Checkout hands the current cart snapshot to the payment flow. The cart
// itself is left untouched; nothing clears it on checkout.
func (s *cartService) Checkout(ctx context.Context, userID string) (*model.CheckoutSnapshot, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByUID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to load user for checkout")
		return nil, fmt.Errorf("failed to check out: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	lines, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to load cart for checkout")
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	if len(lines) == 0 {
		return nil, model.ErrCartEmpty
	}

	snapshot := &model.CheckoutSnapshot{
		User:       user.Public(),
		Lines:      lines,
		TotalPrice: ComputeTotal(lines),
	}

	s.logger.Info().
		Str("uid", userID).
		Int("line_count", len(lines)).
		Float64("total_price", snapshot.TotalPrice).
		Msg("checkout snapshot built")

	return snapshot, nil
}

// lineForUser loads a cart line and verifies it belongs to the given user.
// Lines owned by other users are reported as not found.
func (s *cartService) lineForUser(ctx context.Context, userID, lineID string) (*model.CartLine, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	line, err := s.cartRepo.GetByID(ctx, lineID)
	if err != nil {
		s.logger.Error().Err(err).Str("line_id", lineID).Msg("failed to load cart line")
		return nil, fmt.Errorf("failed to load cart line: %w", err)
	}
	if line == nil || line.UID != userID {
		return nil, model.ErrCartLineNotFound
	}

	return line, nil
}
