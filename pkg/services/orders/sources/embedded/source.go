package embedded

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdborders "github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
)

// Source serves orders previously synced into the embedded DuckDB store.
type Source struct {
	db    *sql.DB
	store duckdborders.Store
}

func SourceFactory(_ context.Context, settings config.SourceSettings) (orders.Source, error) {
	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath:  settings.Store.Path,
		Threads: settings.Store.Threads,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	s, err := duckdborders.NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Source{db: db, store: s}, nil
}

func NewSource(store duckdborders.Store) *Source {
	return &Source{store: store}
}

func (s *Source) Name() string {
	return config.SourceDuckDB
}

func (s *Source) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Order, 0, len(records))
	for _, r := range records {
		result = append(result, adapters.MapStoreOrderToDomain(r))
	}
	return result, nil
}

func (s *Source) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
