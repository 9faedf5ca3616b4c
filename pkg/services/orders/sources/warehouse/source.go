package warehouse

import (
	"context"
	"database/sql"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	sqlstore "github.com/de-tools/sales-atlas/pkg/store/sql"
)

// Source reads orders from a table in a SQL warehouse.
type Source struct {
	name   string
	db     *sql.DB
	reader sqlstore.OrderReader
}

func NewSource(name string, db *sql.DB, table string) (*Source, error) {
	reader, err := sqlstore.NewOrderReader(db, table)
	if err != nil {
		return nil, err
	}
	return &Source{name: name, db: db, reader: reader}, nil
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	records, err := s.reader.ReadOrders(ctx)
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
	return s.db.Close()
}
