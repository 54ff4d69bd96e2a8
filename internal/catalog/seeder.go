package catalog

import (
	"context"
	"fmt"

	"chopnow/internal/config"
	"chopnow/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder loads a catalog file at startup and upserts its items into the food
// collection. Seeding is idempotent: items are keyed by id, so re-running it
// against an already seeded store only refreshes existing entries.
type Seeder struct {
	loader   Loader
	foodRepo repository.FoodRepository
	location string
	logger   zerolog.Logger
}

// NewSeeder builds a seeder from the seed configuration, choosing the S3 or
// local file loader based on the configured source.
func NewSeeder(ctx context.Context, cfg config.SeedConfig, foodRepo repository.FoodRepository, logger zerolog.Logger) (*Seeder, error) {
	var (
		loader   Loader
		location string
		err      error
	)

	switch cfg.Source {
	case "s3":
		loader, err = NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
		if err != nil {
			return nil, err
		}
		location = cfg.Key
	case "local":
		loader = NewFileLoader(logger)
		location = cfg.Path
	default:
		return nil, fmt.Errorf("unknown seed source: %s", cfg.Source)
	}

	return &Seeder{
		loader:   loader,
		foodRepo: foodRepo,
		location: location,
		logger:   logger.With().Str("component", "catalog-seeder").Logger(),
	}, nil
}

// Run loads the catalog and upserts every item. It returns the number of
// items written.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	items, err := s.loader.Load(ctx, s.location)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	seeded := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return seeded, err
		}

		if err := s.foodRepo.Upsert(ctx, item); err != nil {
			s.logger.Error().Err(err).Str("food_id", item.ID).Msg("failed to upsert food item")
			return seeded, fmt.Errorf("failed to seed food item %s: %w", item.ID, err)
		}
		seeded++
	}

	s.logger.Info().Int("items_seeded", seeded).Msg("catalog seeding complete")

	return seeded, nil
}
