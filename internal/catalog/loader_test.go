package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "A", "name": "Jollof Rice", "price": 500, "category": "mains", "imageURL": "https://img/a.png"},
		{"id": "B", "name": "Pounded Yam", "price": 1200, "category": "mains"}
	]`)

	loader := NewFileLoader(zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "Jollof Rice", items[0].Name)
	assert.Equal(t, 500.0, items[0].Price)
	assert.Equal(t, "mains", items[0].Category)
}

func TestFileLoader_Load_SkipsInvalidEntries(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "A", "name": "Jollof Rice", "price": 500},
		{"id": "", "name": "No ID", "price": 100},
		{"id": "C", "name": "", "price": 100}
	]`)

	loader := NewFileLoader(zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].ID)
}

func TestFileLoader_Load_EmptyCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[]`)

	loader := NewFileLoader(zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileLoader_Load_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "an array"`)

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)
	assert.Error(t, err)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFileLoader_Load_CancelledContext(t *testing.T) {
	path := writeCatalogFile(t, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
