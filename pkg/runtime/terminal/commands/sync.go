package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/services/syncer"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdborders "github.com/de-tools/sales-atlas/pkg/store/duckdb/orders"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/syncstate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type SyncCmd struct {
	source   string
	watch    bool
	registry orders.Registry
	settings SettingsLoader
}

func NewSyncCmd(registry orders.Registry, settings SettingsLoader) *cobra.Command {
	sc := &SyncCmd{registry: registry, settings: settings}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy orders from a remote source into the embedded store",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.source, "source", "", "Source kind to copy from, overrides sync.source")
	cmd.Flags().BoolVar(&sc.watch, "watch", false, "Keep syncing every sync.interval until interrupted")

	return cmd
}

func (sc *SyncCmd) run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := zerolog.Ctx(ctx)

	settings, err := sc.settings()
	if err != nil {
		return err
	}

	kind := sc.source
	if kind == "" {
		kind = settings.Sync.Source
	}
	if kind == "" {
		kind = settings.Source.Kind
	}
	if kind == config.SourceDuckDB {
		return fmt.Errorf("cannot sync the embedded store into itself, choose a remote source")
	}

	src, err := sc.registry.Create(ctx, kind, settings.Source)
	if err != nil {
		return fmt.Errorf("failed to create source %s: %w", kind, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close source")
		}
	}()

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath:  settings.Store.Path,
		Threads: settings.Store.Threads,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	orderStore, err := duckdborders.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create order store: %w", err)
	}
	syncStore, err := syncstate.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sync state store: %w", err)
	}

	runnerCfg := syncer.RunnerConfig{}
	if sc.watch {
		runnerCfg.Interval = settings.Sync.Interval
	}
	runner := syncer.NewRunner(src, db, orderStore, syncStore, runnerCfg)

	go runner.Run(ctx)
	return report(ctx, cmd, runner, settings.Store.Path)
}

func report(ctx context.Context, cmd *cobra.Command, runner *syncer.Runner, path string) error {
	var lastErr error
	for p := range runner.Progress() {
		lastErr = p.Err
		if p.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s sync failed: %v\n", p.SyncedAt.Format("2006-01-02 15:04:05"), p.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s synced %d orders from %s into %s\n",
			p.SyncedAt.Format("2006-01-02 15:04:05"), p.Records, p.Source, path)
	}
	<-runner.Done()

	if ctx.Err() != nil {
		return nil
	}
	return lastErr
}
