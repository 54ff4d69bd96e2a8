package repository

import (
	"context"
	"errors"
	"fmt"

	"chopnow/internal/database"
	"chopnow/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// foodRepository implements the FoodRepository interface on the document store.
type foodRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewFoodRepository creates a new document-store-backed catalog repository.
func NewFoodRepository(db *mongo.Database, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		collection: db.Collection(database.CollectionFood),
		logger:     logger.With().Str("repository", "food").Logger(),
	}
}

// GetAll retrieves the full catalog, sorted by name.
func (r *foodRepository) GetAll(ctx context.Context) ([]model.FoodItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query food items")
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.FoodItem
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode food items")
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single catalog entry by its id.
func (r *foodRepository) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	var item model.FoodItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("food_id", id).Msg("food item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id).Msg("failed to query food item")
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}

	return &item, nil
}

// Upsert inserts or replaces a catalog entry keyed on its id.
func (r *foodRepository) Upsert(ctx context.Context, item model.FoodItem) error {
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item, opts)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", item.ID).Msg("failed to upsert food item")
		return fmt.Errorf("failed to upsert food item: %w", err)
	}

	r.logger.Debug().Str("food_id", item.ID).Msg("food item upserted")

	return nil
}
