package syncstate

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStateStore(t *testing.T) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("never ran", func(t *testing.T) {
		run, err := s.Last(ctx, "snowflake")
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("latest run wins", func(t *testing.T) {
		first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		msg := "timeout"
		require.NoError(t, s.Record(ctx, store.SyncRun{Source: "snowflake", SyncedAt: first, Records: 10}))
		require.NoError(t, s.Record(ctx, store.SyncRun{Source: "snowflake", SyncedAt: first.Add(time.Hour), Error: &msg}))
		require.NoError(t, s.Record(ctx, store.SyncRun{Source: "file", SyncedAt: first.Add(2 * time.Hour), Records: 3}))

		run, err := s.Last(ctx, "snowflake")
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, int64(0), run.Records)
		require.NotNil(t, run.Error)
		assert.Equal(t, "timeout", *run.Error)
		assert.True(t, run.SyncedAt.Equal(first.Add(time.Hour)))
	})

	t.Run("records inside a transaction", func(t *testing.T) {
		at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		msg := "access denied"
		err := duckdb.InTransaction(ctx, db, func(ctx context.Context) error {
			if err := s.Record(ctx, store.SyncRun{Source: "s3", SyncedAt: at, Records: 7}); err != nil {
				return err
			}
			return s.Record(ctx, store.SyncRun{Source: "databricks", SyncedAt: at, Error: &msg})
		})
		require.NoError(t, err)

		run, err := s.Last(ctx, "s3")
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, int64(7), run.Records)
		assert.Nil(t, run.Error)

		run, err = s.Last(ctx, "databricks")
		require.NoError(t, err)
		require.NotNil(t, run)
		require.NotNil(t, run.Error)
		assert.Equal(t, "access denied", *run.Error)
	})
}
