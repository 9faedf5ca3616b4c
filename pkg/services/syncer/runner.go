package syncer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdborders "github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/syncstate"
	"github.com/rs/zerolog"
)

// Runner copies the orders of a remote source into the embedded store.
type Runner struct {
	source     orders.Source
	db         *sql.DB
	orderStore duckdborders.Store
	syncStore  syncstate.Store
	done       chan struct{}
	progress   chan RunnerProgress
	config     RunnerConfig
	now        func() time.Time
}

type RunnerConfig struct {
	Interval time.Duration
}

type RunnerProgress struct {
	Source   string
	Records  int64
	SyncedAt time.Time
	Err      error
}

func NewRunner(
	source orders.Source,
	db *sql.DB,
	orderStore duckdborders.Store,
	syncStore syncstate.Store,
	config RunnerConfig,
) *Runner {
	return &Runner{
		source:     source,
		db:         db,
		orderStore: orderStore,
		syncStore:  syncStore,
		done:       make(chan struct{}),
		progress:   make(chan RunnerProgress, 100),
		config:     config,
		now:        time.Now,
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Progress reports every finished pass. Reports are dropped when nobody reads.
func (r *Runner) Progress() <-chan RunnerProgress {
	return r.progress
}

// SyncOnce fetches the source and replaces the stored orders in a single
// transaction. A failed pass is recorded in the sync state as well.
func (r *Runner) SyncOnce(ctx context.Context) (int64, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", r.source.Name()).Logger()
	syncedAt := r.now().UTC()

	fetched, err := r.source.FetchOrders(ctx)
	if err != nil {
		r.recordFailure(ctx, syncedAt, err)
		return 0, fmt.Errorf("fetch orders: %w", err)
	}

	records := make([]store.OrderRecord, 0, len(fetched))
	for _, o := range fetched {
		records = append(records, adapters.MapDomainOrderToStore(o))
	}

	run := store.SyncRun{
		Source:   r.source.Name(),
		SyncedAt: syncedAt,
		Records:  int64(len(records)),
	}
	err = duckdb.InTransaction(ctx, r.db, func(ctx context.Context) error {
		if err := r.orderStore.Replace(ctx, records); err != nil {
			return err
		}
		return r.syncStore.Record(ctx, run)
	})
	if err != nil {
		r.recordFailure(ctx, syncedAt, err)
		return 0, err
	}

	logger.Info().Int64("records", run.Records).Msg("orders synced")
	return run.Records, nil
}

func (r *Runner) recordFailure(ctx context.Context, syncedAt time.Time, cause error) {
	msg := cause.Error()
	err := r.syncStore.Record(ctx, store.SyncRun{
		Source:   r.source.Name(),
		SyncedAt: syncedAt,
		Error:    &msg,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to record sync failure")
	}
}

// Run syncs immediately and then every configured interval until ctx is
// done. Without an interval it syncs once.
func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Str("source", r.source.Name()).Logger()
	defer close(r.done)
	defer close(r.progress)

	r.pass(ctx, logger)
	if r.config.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Orders sync stopped")
			return
		case <-ticker.C:
			r.pass(ctx, logger)
		}
	}
}

func (r *Runner) pass(ctx context.Context, logger zerolog.Logger) {
	n, err := r.SyncOnce(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to sync orders")
	}

	select {
	case r.progress <- RunnerProgress{Source: r.source.Name(), Records: n, SyncedAt: r.now().UTC(), Err: err}:
	default:
	}
}
