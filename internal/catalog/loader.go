package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"chopnow/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading catalog files.
type Loader interface {
	// Load reads a JSON catalog file and returns its food items.
	Load(ctx context.Context, location string) ([]model.FoodItem, error)
}

// fileLoader implements Loader for reading catalog files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON file containing an array of food items.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.FoodItem, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
	}

	items, err := decodeCatalog(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("catalog file loaded successfully")

	return items, nil
}

// decodeCatalog parses a JSON array of food items, dropping entries without
// an id or name so a single bad row cannot block seeding.
func decodeCatalog(data []byte) ([]model.FoodItem, error) {
	var raw []model.FoodItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make([]model.FoodItem, 0, len(raw))
	for _, item := range raw {
		if item.ID == "" || item.Name == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
