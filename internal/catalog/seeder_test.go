package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chopnow/internal/config"
	"chopnow/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFoodRepository is a mock implementation of repository.FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) GetAll(ctx context.Context) ([]model.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Upsert(ctx context.Context, item model.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func seedConfigForFile(t *testing.T, content string) config.SeedConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return config.SeedConfig{Enabled: true, Source: "local", Path: path}
}

func TestSeeder_Run(t *testing.T) {
	cfg := seedConfigForFile(t, `[
		{"id": "A", "name": "Jollof Rice", "price": 500},
		{"id": "B", "name": "Pounded Yam", "price": 1200}
	]`)

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Upsert", mock.Anything, mock.AnythingOfType("model.FoodItem")).Return(nil)

	seeder, err := NewSeeder(context.Background(), cfg, foodRepo, zerolog.Nop())
	require.NoError(t, err)

	seeded, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, seeded)
	foodRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestSeeder_Run_Rerunnable(t *testing.T) {
	// Seeding upserts by id, so running twice writes the same items again
	// instead of duplicating them.
	cfg := seedConfigForFile(t, `[{"id": "A", "name": "Jollof Rice", "price": 500}]`)

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	seeder, err := NewSeeder(context.Background(), cfg, foodRepo, zerolog.Nop())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		seeded, err := seeder.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, seeded)
	}
}

func TestSeeder_Run_UpsertFailure(t *testing.T) {
	cfg := seedConfigForFile(t, `[{"id": "A", "name": "Jollof Rice", "price": 500}]`)

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))

	seeder, err := NewSeeder(context.Background(), cfg, foodRepo, zerolog.Nop())
	require.NoError(t, err)

	_, err = seeder.Run(context.Background())
	assert.Error(t, err)
}

func TestNewSeeder_UnknownSource(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	_, err := NewSeeder(context.Background(), config.SeedConfig{Source: "ftp"}, foodRepo, zerolog.Nop())
	assert.Error(t, err)
}
