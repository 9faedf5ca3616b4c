package syncstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
)

type Store interface {
	Record(ctx context.Context, run store.SyncRun) error
	Last(ctx context.Context, source string) (*store.SyncRun, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db}, nil
}

func (s *defaultStore) Record(ctx context.Context, run store.SyncRun) error {
	query := `INSERT INTO sync_state (source, synced_at, records, error) VALUES (?, ?, ?, ?)`

	// DuckDB binds plain values only; a nil interface becomes NULL.
	var errText any
	if run.Error != nil {
		errText = *run.Error
	}

	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, run.Source, run.SyncedAt, run.Records, errText)
	} else {
		_, err = s.db.ExecContext(ctx, query, run.Source, run.SyncedAt, run.Records, errText)
	}
	if err != nil {
		return fmt.Errorf("record sync run: %w", err)
	}
	return nil
}

// Last returns the most recent run for source, or nil when it never ran.
func (s *defaultStore) Last(ctx context.Context, source string) (*store.SyncRun, error) {
	query := `
		SELECT source, synced_at, records, error
		FROM sync_state
		WHERE source = ?
		ORDER BY synced_at DESC
		LIMIT 1
	`
	var (
		run     store.SyncRun
		errText sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, source).Scan(&run.Source, &run.SyncedAt, &run.Records, &errText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last sync run: %w", err)
	}
	if errText.Valid {
		run.Error = &errText.String
	}
	return &run, nil
}
