package integration

import (
	"context"
	"testing"
	"time"

	"chopnow/internal/database"
	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFoodRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	ctx := context.Background()

	foodRepo := repository.NewFoodRepository(testDB.DB, zerolog.Nop())
	SeedFood(t, foodRepo)

	t.Run("GetAll returns seeded items sorted by name", func(t *testing.T) {
		items, err := foodRepo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 5)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Name, items[i].Name)
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		item, err := foodRepo.GetByID(ctx, "suya")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Beef Suya", item.Name)
		assert.Equal(t, 800.0, item.Price)
	})

	t.Run("GetByID missing returns nil", func(t *testing.T) {
		item, err := foodRepo.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("Upsert is idempotent", func(t *testing.T) {
		item := model.FoodItem{ID: "suya", Name: "Beef Suya", Price: 850, Category: "grills"}
		require.NoError(t, foodRepo.Upsert(ctx, item))

		items, err := foodRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 5)

		got, err := foodRepo.GetByID(ctx, "suya")
		require.NoError(t, err)
		assert.Equal(t, 850.0, got.Price)
	})
}

func TestCartRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	ctx := context.Background()

	cartRepo := repository.NewCartRepository(testDB.DB, zerolog.Nop())

	t.Run("Insert and GetByUser", func(t *testing.T) {
		CleanupDB(t, testDB.DB)

		lineA := &model.CartLine{UID: "u1", FoodID: "jollof-rice", Quantity: 2, Price: 1500, Name: "Jollof Rice"}
		lineB := &model.CartLine{UID: "u1", FoodID: "suya", Quantity: 1, Price: 800, Name: "Beef Suya"}
		other := &model.CartLine{UID: "u2", FoodID: "suya", Quantity: 3, Price: 800, Name: "Beef Suya"}

		require.NoError(t, cartRepo.Insert(ctx, lineA))
		require.NoError(t, cartRepo.Insert(ctx, lineB))
		require.NoError(t, cartRepo.Insert(ctx, other))

		assert.False(t, lineA.ID.IsZero(), "Insert should backfill the document id")

		lines, err := cartRepo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("duplicate adds create separate lines", func(t *testing.T) {
		CleanupDB(t, testDB.DB)

		for i := 0; i < 2; i++ {
			line := &model.CartLine{UID: "u1", FoodID: "suya", Quantity: 1, Price: 800}
			require.NoError(t, cartRepo.Insert(ctx, line))
		}

		lines, err := cartRepo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("UpdateQuantity and Delete", func(t *testing.T) {
		CleanupDB(t, testDB.DB)

		line := &model.CartLine{UID: "u1", FoodID: "suya", Quantity: 1, Price: 800}
		require.NoError(t, cartRepo.Insert(ctx, line))

		require.NoError(t, cartRepo.UpdateQuantity(ctx, line.ID.Hex(), 3))

		got, err := cartRepo.GetByID(ctx, line.ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 3, got.Quantity)

		require.NoError(t, cartRepo.Delete(ctx, line.ID.Hex()))

		got, err = cartRepo.GetByID(ctx, line.ID.Hex())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("string-typed numbers decode as numbers", func(t *testing.T) {
		CleanupDB(t, testDB.DB)

		// Simulate a document written by an older client.
		_, err := testDB.DB.Collection(database.CollectionCart).InsertOne(ctx, bson.M{
			"uid":      "u1",
			"food_id":  "moi-moi",
			"quantity": "2",
			"price":    "400",
			"name":     "Moi Moi",
		})
		require.NoError(t, err)

		lines, err := cartRepo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 400.0, lines[0].Price)
	})

	t.Run("DeleteByUserAndFood removes every matching line", func(t *testing.T) {
		CleanupDB(t, testDB.DB)

		for i := 0; i < 3; i++ {
			line := &model.CartLine{UID: "u1", FoodID: "suya", Quantity: 1, Price: 800}
			require.NoError(t, cartRepo.Insert(ctx, line))
		}

		deleted, err := cartRepo.DeleteByUserAndFood(ctx, "u1", "suya")
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		lines, err := cartRepo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestSavedItemRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	ctx := context.Background()

	savedRepo := repository.NewSavedItemRepository(testDB.DB, zerolog.Nop())

	item := &model.SavedItem{UID: "u1", FoodID: "suya", Price: 800, Name: "Beef Suya"}
	require.NoError(t, savedRepo.Insert(ctx, item))

	items, err := savedRepo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "suya", items[0].FoodID)

	deleted, err := savedRepo.DeleteByUserAndFood(ctx, "u1", "suya")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	items, err = savedRepo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	ctx := context.Background()

	orderRepo := repository.NewOrderRepository(testDB.DB, zerolog.Nop())

	first := &model.Order{
		FoodItems:        []model.CartLine{{UID: "u1", FoodID: "suya", Quantity: 1, Price: 800}},
		TotalPrice:       800,
		User:             model.User{UID: "u1", Email: "ada@example.com"},
		PaymentReference: "ref-1",
		PaymentStatus:    "success",
		Timestamp:        time.Now().Add(-time.Hour),
	}
	second := &model.Order{
		FoodItems:        []model.CartLine{{UID: "u1", FoodID: "jollof-rice", Quantity: 2, Price: 1500}},
		TotalPrice:       3000,
		User:             model.User{UID: "u1", Email: "ada@example.com"},
		PaymentReference: "ref-2",
		PaymentStatus:    "success",
		Timestamp:        time.Now(),
	}

	require.NoError(t, orderRepo.Insert(ctx, first))
	require.NoError(t, orderRepo.Insert(ctx, second))
	assert.False(t, first.ID.IsZero())

	orders, err := orderRepo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first.
	assert.Equal(t, "ref-2", orders[0].PaymentReference)
	assert.Equal(t, "ref-1", orders[1].PaymentReference)

	orders, err = orderRepo.GetByUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Lookup by payment reference finds the one order it produced.
	order, err := orderRepo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, first.ID, order.ID)
	assert.Equal(t, "u1", order.User.UID)

	order, err = orderRepo.GetByReference(ctx, "ref-unknown")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestUserRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(testDB.DB, zerolog.Nop())

	user := &model.User{
		UID:          "u1",
		FullName:     "Ada Obi",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, userRepo.Insert(ctx, user))

	got, err := userRepo.GetByUID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada Obi", got.FullName)

	got, err = userRepo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UID)

	err = userRepo.UpdateProfile(ctx, "u1", model.UpdateProfileRequest{
		HomeAddress: "12 Allen Avenue, Ikeja",
	})
	require.NoError(t, err)

	got, err = userRepo.GetByUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "12 Allen Avenue, Ikeja", got.HomeAddress)
	assert.Equal(t, "Ada Obi", got.FullName, "untouched fields keep their values")

	err = userRepo.UpdateProfile(ctx, "ghost", model.UpdateProfileRequest{PhoneNumber: "080"})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
