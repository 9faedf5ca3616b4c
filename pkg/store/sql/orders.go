package sql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
	"github.com/rs/zerolog"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,2}$`)

// OrderReader reads orders from a table in a remote SQL warehouse. The table
// must expose the same snake_case columns as the embedded orders table.
type OrderReader interface {
	ReadOrders(ctx context.Context) ([]store.OrderRecord, error)
}

type reader struct {
	db    *sql.DB
	table string
}

func NewOrderReader(db *sql.DB, table string) (OrderReader, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid orders table name %q", table)
	}
	return &reader{db: db, table: table}, nil
}

func (r *reader) ReadOrders(ctx context.Context) ([]store.OrderRecord, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, BuildOrdersQuery(r.table))
	if err != nil {
		return nil, fmt.Errorf("orders query on %s failed: %w", r.table, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close orders query rows")
		}
	}(rows)

	records, err := orders.ScanOrderRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan orders from %s: %w", r.table, err)
	}

	logger.Debug().Str("table", r.table).Int("records", len(records)).Msg("orders read from warehouse")
	return records, nil
}

func BuildOrdersQuery(table string) string {
	return fmt.Sprintf(`SELECT
		row_id, order_id, order_date, ship_date, ship_mode, customer_id,
		customer_name, segment, country, city, state, postal_code,
		region, product_id, category, sub_category, product_name,
		sales, quantity, discount, profit
	FROM %s`, table)
}
