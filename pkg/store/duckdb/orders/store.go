package orders

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
)

// Store persists orders in the embedded DuckDB database. Writes join the
// transaction carried by ctx when there is one.
type Store interface {
	Add(ctx context.Context, records []store.OrderRecord) error
	Replace(ctx context.Context, records []store.OrderRecord) error
	List(ctx context.Context) ([]store.OrderRecord, error)
	GetStats(ctx context.Context) (*store.OrderStats, error)
}

var columns = []string{
	"row_id", "order_id", "order_date", "ship_date", "ship_mode", "customer_id",
	"customer_name", "segment", "country", "city", "state", "postal_code",
	"region", "product_id", "category", "sub_category", "product_name",
	"sales", "quantity", "discount", "profit",
}

type orderStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &orderStore{db: db}, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

func (s *orderStore) conn(ctx context.Context) execer {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *orderStore) Add(ctx context.Context, records []store.OrderRecord) error {
	if len(records) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(`INSERT INTO orders (%s) VALUES (%s)`, strings.Join(columns, ", "), placeholders)

	stmt, err := s.conn(ctx).PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.RowID, r.OrderID, r.OrderDate, r.ShipDate, r.ShipMode, r.CustomerID,
			r.CustomerName, r.Segment, r.Country, r.City, r.State, r.PostalCode,
			r.Region, r.ProductID, r.Category, r.SubCategory, r.ProductName,
			r.Sales, r.Quantity, r.Discount, r.Profit,
		)
		if err != nil {
			return fmt.Errorf("insert order %q: %w", r.OrderID, err)
		}
	}

	return nil
}

func (s *orderStore) Replace(ctx context.Context, records []store.OrderRecord) error {
	if _, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	return s.Add(ctx, records)
}

func (s *orderStore) List(ctx context.Context) ([]store.OrderRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY row_id, order_id`, strings.Join(columns, ", "))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	return ScanOrderRows(rows)
}

func (s *orderStore) GetStats(ctx context.Context) (*store.OrderStats, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	var last sql.NullTime
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(synced_at) FROM sync_state WHERE error IS NULL`).Scan(&last); err != nil {
		return nil, fmt.Errorf("get last sync: %w", err)
	}

	var lastSynced *time.Time
	if last.Valid {
		t := last.Time
		lastSynced = &t
	}
	return &store.OrderStats{RecordsCount: total, LastSyncedAt: lastSynced}, nil
}

// ScanOrderRows reads rows selected in the orders column order. NULL values
// come back as zero values.
func ScanOrderRows(rows *sql.Rows) ([]store.OrderRecord, error) {
	records := make([]store.OrderRecord, 0)
	for rows.Next() {
		var (
			rowID, postalCode, sales, quantity, discount, profit sql.NullFloat64
			strs                                                 [15]sql.NullString
		)
		err := rows.Scan(
			&rowID, &strs[0], &strs[1], &strs[2], &strs[3], &strs[4],
			&strs[5], &strs[6], &strs[7], &strs[8], &strs[9], &postalCode,
			&strs[10], &strs[11], &strs[12], &strs[13], &strs[14],
			&sales, &quantity, &discount, &profit,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, store.OrderRecord{
			RowID:        rowID.Float64,
			OrderID:      strs[0].String,
			OrderDate:    strs[1].String,
			ShipDate:     strs[2].String,
			ShipMode:     strs[3].String,
			CustomerID:   strs[4].String,
			CustomerName: strs[5].String,
			Segment:      strs[6].String,
			Country:      strs[7].String,
			City:         strs[8].String,
			State:        strs[9].String,
			PostalCode:   postalCode.Float64,
			Region:       strs[10].String,
			ProductID:    strs[11].String,
			Category:     strs[12].String,
			SubCategory:  strs[13].String,
			ProductName:  strs[14].String,
			Sales:        sales.Float64,
			Quantity:     quantity.Float64,
			Discount:     discount.Float64,
			Profit:       profit.Float64,
		})
	}
	return records, rows.Err()
}

// Columns returns the orders columns in scan order.
func Columns() []string {
	return append([]string(nil), columns...)
}
