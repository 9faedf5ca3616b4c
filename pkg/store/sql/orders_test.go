package sql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderReader_ReadOrders(t *testing.T) {
	// Given: a warehouse with two orders, one of them mostly NULL
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(orders.Columns()).
		AddRow(2368.0, "CA-2017-123659", "2/10/17", "2/13/17", "First Class", "MN-17935",
			"Michael Nguyen", "Consumer", "United States", "Clinton", "Maryland", 20735.0,
			"East", "OFF-PA-10002464", "Office Supplies", "Paper", "HP Office Recycled Paper",
			23.12, 4.0, 0.0, 11.3288).
		AddRow(2369.0, "US-2016-129469", nil, nil, nil, nil,
			nil, nil, nil, nil, "Ohio", nil,
			nil, nil, "Furniture", "Furnishings", nil,
			532.704, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(BuildOrdersQuery("sales.orders"))).WillReturnRows(rows)

	r, err := NewOrderReader(db, "sales.orders")
	require.NoError(t, err)

	// When
	records, err := r.ReadOrders(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Maryland", records[0].State)
	assert.Equal(t, 20735.0, records[0].PostalCode)
	assert.Equal(t, 11.3288, records[0].Profit)
	assert.Equal(t, store.OrderRecord{
		RowID: 2369, OrderID: "US-2016-129469", State: "Ohio",
		Category: "Furniture", SubCategory: "Furnishings", Sales: 532.704,
	}, records[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderReader_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("warehouse suspended"))

	r, err := NewOrderReader(db, "orders")
	require.NoError(t, err)

	_, err = r.ReadOrders(context.Background())
	assert.ErrorContains(t, err, "warehouse suspended")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewOrderReader_Validation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewOrderReader(nil, "orders")
	assert.Error(t, err)

	for _, table := range []string{"", "orders; DROP TABLE x", "a.b.c.d", "1orders"} {
		_, err = NewOrderReader(db, table)
		assert.Error(t, err, table)
	}

	for _, table := range []string{"orders", "main.default.orders", "SALES.PUBLIC.ORDERS"} {
		_, err = NewOrderReader(db, table)
		assert.NoError(t, err, table)
	}
}
