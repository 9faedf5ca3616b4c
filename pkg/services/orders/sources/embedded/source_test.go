package embedded

import (
	"context"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdborders "github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FetchOrders(t *testing.T) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	s, err := duckdborders.NewStore(db)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Add(ctx, []store.OrderRecord{
		{RowID: 1, State: "Ohio", Category: "Furniture", SubCategory: "Chairs", Sales: 10.5},
		{RowID: 2, State: "Texas", Category: "Technology", SubCategory: "Phones", Sales: 3},
	}))

	src := NewSource(s)
	orders, err := src.FetchOrders(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Order{
		{RowID: 1, State: "Ohio", Category: "Furniture", SubCategory: "Chairs", Sales: 10.5},
		{RowID: 2, State: "Texas", Category: "Technology", SubCategory: "Phones", Sales: 3},
	}, orders)
	assert.Equal(t, config.SourceDuckDB, src.Name())
	assert.NoError(t, src.Close())
}

func TestSourceFactory(t *testing.T) {
	src, err := SourceFactory(context.Background(), config.SourceSettings{
		Store: config.StoreSettings{Path: ":memory:"},
	})
	require.NoError(t, err)

	orders, err := src.FetchOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, src.Close())
}
