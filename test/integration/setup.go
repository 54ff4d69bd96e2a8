package integration

import (
	"context"
	"testing"
	"time"

	"chopnow/internal/config"
	"chopnow/internal/database"
	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestDB represents a test document store instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
	ConnStr   string
}

// SetupTestDB starts a MongoDB test container and connects to it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	cfg := config.MongoConfig{
		URI:            connStr,
		Database:       "chopnow_test",
		ConnectTimeout: 30,
	}

	client, db, err := database.Connect(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to connect to document store: %v", err)
	}

	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: container,
		Client:    client,
		DB:        db,
		ConnStr:   connStr,
	}
}

// SeedFood inserts test catalog data.
func SeedFood(t *testing.T, foodRepo repository.FoodRepository) {
	t.Helper()

	ctx := context.Background()

	items := []model.FoodItem{
		{ID: "jollof-rice", Name: "Jollof Rice", Price: 1500, Category: "mains", ImageURL: "https://img/jollof.jpg"},
		{ID: "pounded-yam", Name: "Pounded Yam & Egusi", Price: 2200, Category: "mains"},
		{ID: "suya", Name: "Beef Suya", Price: 800, Category: "grills"},
		{ID: "moi-moi", Name: "Moi Moi", Price: 400, Category: "sides"},
		{ID: "chapman", Name: "Chapman", Price: 700, Category: "drinks"},
	}

	for _, item := range items {
		if err := foodRepo.Upsert(ctx, item); err != nil {
			t.Fatalf("failed to seed food item %s: %v", item.ID, err)
		}
	}
}

// CleanupDB removes all data from the test collections.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	collections := []string{
		database.CollectionUsers,
		database.CollectionFood,
		database.CollectionCart,
		database.CollectionSavedItems,
		database.CollectionOrders,
	}
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Logf("failed to clean collection %s: %v", name, err)
		}
	}
}
