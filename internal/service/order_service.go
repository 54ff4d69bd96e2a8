package service

import (
	"context"
	"fmt"
	"time"

	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create writes a new immutable order snapshot from a checkout snapshot and
// the gateway's payment result. The cart is deliberately not cleared here;
// no order operation ever mutates the cart collection.
func (s *orderService) Create(ctx context.Context, snapshot *model.CheckoutSnapshot, reference, status string) (*model.Order, error) {
	if snapshot == nil || len(snapshot.Lines) == 0 {
		return nil, model.ErrCartEmpty
	}
	if reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}

	order := &model.Order{
		FoodItems:        snapshot.Lines,
		TotalPrice:       snapshot.TotalPrice,
		User:             snapshot.User.Public(),
		PaymentReference: reference,
		PaymentStatus:    status,
		Timestamp:        time.Now(),
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Str("uid", snapshot.User.UID).
			Str("payment_reference", reference).
			Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.Hex()).
		Str("uid", snapshot.User.UID).
		Float64("total_price", order.TotalPrice).
		Str("payment_status", status).
		Msg("order created")

	return order, nil
}

// GetByReference returns the order created for a payment reference. A nil
// order means the reference has not been turned into an order yet.
func (s *orderService) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	if reference == "" {
		return nil, nil
	}

	order, err := s.orderRepo.GetByReference(ctx, reference)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_reference", reference).Msg("failed to look up order by reference")
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	return order, nil
}

// ListForUser fetches the user's orders and flattens each order's food items
// into one row per (order, line item) pair. Order history is displayed as a
// flat list of purchased items, not grouped by order, so every row carries
// the parent order's id, payment reference and status, plus its index within
// the order: food_id alone is not unique across a multi-order list.
func (s *orderService) ListForUser(ctx context.Context, userID string) ([]model.OrderRow, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	rows := []model.OrderRow{}
	for _, order := range orders {
		for i, item := range order.FoodItems {
			rows = append(rows, model.OrderRow{
				CartLine:         item,
				OrderID:          order.ID.Hex(),
				Index:            i,
				PaymentReference: order.PaymentReference,
				PaymentStatus:    order.PaymentStatus,
			})
		}
	}

	s.logger.Debug().
		Str("uid", userID).
		Int("orders", len(orders)).
		Int("rows", len(rows)).
		Msg("order history flattened")

	return rows, nil
}
