package database

import (
	"context"
	"fmt"
	"time"

	"chopnow/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the document store. These match the documents written
// by existing clients, so field and collection names are load-bearing.
const (
	CollectionUsers      = "users"
	CollectionFood       = "food"
	CollectionCart       = "cart"
	CollectionSavedItems = "saved_items"
	CollectionOrders     = "orders"
)

// Connect creates a Mongo client, verifies connectivity and returns a handle
// to the configured database.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	logger.Info().
		Str("uri", cfg.URI).
		Str("database", cfg.Database).
		Msg("connecting to document store")

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	// Verify connection
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client, client.Database(cfg.Database), nil
}
