package repository

import (
	"context"
	"errors"
	"fmt"

	"chopnow/internal/database"
	"chopnow/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the OrderRepository interface on the document
// store.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new document-store-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(database.CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Insert creates a new order snapshot and fills in its generated id.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("uid", order.User.UID).
			Str("payment_reference", order.PaymentReference).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	r.logger.Debug().
		Str("order_id", order.ID.Hex()).
		Str("payment_reference", order.PaymentReference).
		Msg("order created")

	return nil
}

// GetByReference retrieves the order created for a payment reference, or nil
// when no order exists for it yet.
func (r *orderRepository) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	var order model.Order
	if err := r.collection.FindOne(ctx, bson.M{"paymentReference": reference}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("payment_reference", reference).Msg("failed to query order by reference")
		return nil, fmt.Errorf("failed to query order by reference: %w", err)
	}

	return &order, nil
}

// GetByUser retrieves all orders whose embedded user snapshot carries the
// given uid, newest first.
func (r *orderRepository) GetByUser(ctx context.Context, uid string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user.uid": uid}, opts)
	if err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
