package repository

import (
	"context"
	"fmt"

	"chopnow/internal/database"
	"chopnow/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// savedItemRepository implements the SavedItemRepository interface on the
// document store.
type savedItemRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewSavedItemRepository creates a new document-store-backed wish-list
// repository.
func NewSavedItemRepository(db *mongo.Database, logger zerolog.Logger) SavedItemRepository {
	return &savedItemRepository{
		collection: db.Collection(database.CollectionSavedItems),
		logger:     logger.With().Str("repository", "saved_item").Logger(),
	}
}

// Insert creates a new saved-item document.
func (r *savedItemRepository) Insert(ctx context.Context, item *model.SavedItem) error {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("uid", item.UID).
			Str("food_id", item.FoodID).
			Msg("failed to insert saved item")
		return fmt.Errorf("failed to insert saved item: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	r.logger.Debug().
		Str("uid", item.UID).
		Str("food_id", item.FoodID).
		Msg("saved item created")

	return nil
}

// GetByUser retrieves all saved items belonging to a user.
func (r *savedItemRepository) GetByUser(ctx context.Context, uid string) ([]model.SavedItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to query saved items")
		return nil, fmt.Errorf("failed to query saved items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.SavedItem
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to decode saved items")
		return nil, fmt.Errorf("failed to decode saved items: %w", err)
	}

	return items, nil
}

// DeleteByUserAndFood removes every saved item for (uid, food_id) in a single
// batched delete.
func (r *savedItemRepository) DeleteByUserAndFood(ctx context.Context, uid, foodID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"uid": uid, "food_id": foodID})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("uid", uid).
			Str("food_id", foodID).
			Msg("failed to delete saved items")
		return 0, fmt.Errorf("failed to delete saved items: %w", err)
	}

	return result.DeletedCount, nil
}
