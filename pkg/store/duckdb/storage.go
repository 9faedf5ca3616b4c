package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const OrdersTableSchema = `
	CREATE TABLE IF NOT EXISTS orders (
		row_id DOUBLE,
		order_id VARCHAR NOT NULL DEFAULT '',
		order_date VARCHAR NOT NULL DEFAULT '',
		ship_date VARCHAR NOT NULL DEFAULT '',
		ship_mode VARCHAR NOT NULL DEFAULT '',
		customer_id VARCHAR NOT NULL DEFAULT '',
		customer_name VARCHAR NOT NULL DEFAULT '',
		segment VARCHAR NOT NULL DEFAULT '',
		country VARCHAR NOT NULL DEFAULT '',
		city VARCHAR NOT NULL DEFAULT '',
		state VARCHAR NOT NULL DEFAULT '',
		postal_code DOUBLE,
		region VARCHAR NOT NULL DEFAULT '',
		product_id VARCHAR NOT NULL DEFAULT '',
		category VARCHAR NOT NULL DEFAULT '',
		sub_category VARCHAR NOT NULL DEFAULT '',
		product_name VARCHAR NOT NULL DEFAULT '',
		sales DOUBLE,
		quantity DOUBLE,
		discount DOUBLE,
		profit DOUBLE
	);
`

const SyncStateSchema = `
	CREATE TABLE IF NOT EXISTS sync_state (
		source VARCHAR NOT NULL,
		synced_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		records BIGINT NOT NULL DEFAULT 0,
		error VARCHAR NULL
	);
`

var bootQueries = []string{
	OrdersTableSchema,
	SyncStateSchema,
}

const InMemoryPath = ":memory:"

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	// An empty path opens an in-memory database.
	path := settings.DbPath
	if path == InMemoryPath {
		path = ""
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", path, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
