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

// userRepository implements the UserRepository interface on the document store.
type userRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewUserRepository creates a new document-store-backed user repository.
func NewUserRepository(db *mongo.Database, logger zerolog.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection(database.CollectionUsers),
		logger:     logger.With().Str("repository", "user").Logger(),
	}
}

// Insert creates a new user document.
func (r *userRepository) Insert(ctx context.Context, user *model.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		r.logger.Error().Err(err).Str("uid", user.UID).Msg("failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	r.logger.Debug().Str("uid", user.UID).Msg("user created successfully")

	return nil
}

// GetByUID retrieves the user document for an authenticated identity.
func (r *userRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("uid", uid).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user document by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("email", email).Msg("user not found by email")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user by email")
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return &user, nil
}

// UpdateProfile merges the editable profile fields into the user document.
func (r *userRepository) UpdateProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) error {
	set := bson.M{}
	if req.FullName != "" {
		set["fullName"] = req.FullName
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	if req.HomeAddress != "" {
		set["home_address"] = req.HomeAddress
	}

	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": set})
	if err != nil {
		r.logger.Error().Err(err).Str("uid", uid).Msg("failed to update user profile")
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if result.MatchedCount == 0 {
		r.logger.Debug().Str("uid", uid).Msg("no user document matched for profile update")
		return model.ErrUserNotFound
	}

	r.logger.Debug().
		Str("uid", uid).
		Int("fields", len(set)).
		Msg("user profile updated")

	return nil
}
