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
)

// cartRepository implements the CartRepository interface on the document store.
type cartRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewCartRepository creates a new document-store-backed cart repository.
func NewCartRepository(db *mongo.Database, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		collection: db.Collection(database.CollectionCart),
		logger:     logger.With().Str("repository", "cart").Logger(),
	}
}

// Insert creates a new cart line and fills in its generated id.
func (r *cartRepository) Insert(ctx context.Context, line *model.CartLine) error {
	result, err := r.collection.InsertOne(ctx, line)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("uid", line.UID).
			Str("food_id", line.FoodID).
			Msg("failed to insert cart line")
		return fmt.Errorf("failed to insert cart line: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		line.ID = oid
	}

	r.logger.Debug().
		Str("uid", line.UID).
		Str("food_id", line.FoodID).
		Msg("cart line created")

	return nil
}

// GetByID retrieves a single cart line by its id.
func (r *cartRepository) GetByID(ctx context.Context, lineID string) (*model.CartLine, error) {
	oid, err := primitive.ObjectIDFromHex(lineID)
	if err != nil {
		r.logger.Debug().Str("line_id", lineID).Msg("malformed cart line id")
		return nil, nil
	}

	var line model.CartLine
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&line); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("line_id", lineID).Msg("cart line not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("line_id", lineID).Msg("failed to query cart line")
		return nil, fmt.Errorf("failed to query cart line: %w", err)
	}

	return &line, nil
}

// GetByUser retrieves all cart lines belonging to a user.
func (r *cartRepository) GetByUser(ctx context.Context, uid string) ([]model.CartLine, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer cursor.Close(ctx)

	var lines []model.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to decode cart lines")
		return nil, fmt.Errorf("failed to decode cart lines: %w", err)
	}

	return lines, nil
}

// UpdateQuantity persists a new quantity on a cart line.
func (r *cartRepository) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(lineID)
	if err != nil {
		return model.ErrCartLineNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("line_id", lineID).
			Int("quantity", quantity).
			Msg("failed to update cart line quantity")
		return fmt.Errorf("failed to update cart line quantity: %w", err)
	}

	if result.MatchedCount == 0 {
		r.logger.Debug().Str("line_id", lineID).Msg("no cart line matched for quantity update")
		return model.ErrCartLineNotFound
	}

	return nil
}

// Delete removes a cart line by its id.
func (r *cartRepository) Delete(ctx context.Context, lineID string) error {
	oid, err := primitive.ObjectIDFromHex(lineID)
	if err != nil {
		return model.ErrCartLineNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error().Err(err).Str("line_id", lineID).Msg("failed to delete cart line")
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	if result.DeletedCount == 0 {
		r.logger.Debug().Str("line_id", lineID).Msg("no cart line matched for delete")
		return model.ErrCartLineNotFound
	}

	r.logger.Debug().Str("line_id", lineID).Msg("cart line deleted")

	return nil
}

// DeleteByUserAndFood removes every cart line for (uid, food_id) in a single
// batched delete.
func (r *cartRepository) DeleteByUserAndFood(ctx context.Context, uid, foodID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"uid": uid, "food_id": foodID})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("uid", uid).
			Str("food_id", foodID).
			Msg("failed to delete cart lines by food")
		return 0, fmt.Errorf("failed to delete cart lines by food: %w", err)
	}

	r.logger.Debug().
		Str("uid", uid).
		Str("food_id", foodID).
		Int64("deleted", result.DeletedCount).
		Msg("cart lines deleted by food")

	return result.DeletedCount, nil
}
