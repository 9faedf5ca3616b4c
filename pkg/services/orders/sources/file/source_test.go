package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FetchOrders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"state": "Ohio", "category": "Furniture", "subCategory": "Chairs", "sales": 100.4},
		{"state": "Texas", "category": "Technology", "subCategory": "Phones", "sales": 50}
	]`), 0o600))

	src, err := SourceFactory(context.Background(), config.SourceSettings{
		File: config.FileSettings{Path: path},
	})
	require.NoError(t, err)
	defer src.Close()

	orders, err := src.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Ohio", orders[0].State)
	assert.Equal(t, 100.4, orders[0].Sales)
	assert.Equal(t, config.SourceFile, src.Name())
}

func TestSource_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewSource("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		src, err := NewSource(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)

		_, err = src.FetchOrders(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		src, err := NewSource("orders.json")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = src.FetchOrders(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
