package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/services/pivot"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type TableCmd struct {
	source   string
	row      string
	sub      string
	col      string
	measure  string
	timeout  time.Duration
	registry orders.Registry
	reporter *export.Reporter
	settings SettingsLoader
}

func NewTableCmd(registry orders.Registry, reporter *export.Reporter, settings SettingsLoader) *cobra.Command {
	tc := &TableCmd{registry: registry, reporter: reporter, settings: settings}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render the orders pivot table",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.source, "source", "", "Order source kind, overrides source.kind")
	cmd.Flags().StringVar(&tc.row, "row", "", "Row dimension (e.g., category)")
	cmd.Flags().StringVar(&tc.sub, "sub", "", "Row sub-dimension (e.g., subCategory)")
	cmd.Flags().StringVar(&tc.col, "col", "", "Column dimension (e.g., state)")
	cmd.Flags().StringVar(&tc.measure, "measure", "", "Measure to sum (sales, quantity, profit, discount)")
	cmd.Flags().DurationVar(&tc.timeout, "timeout", 60*time.Second, "Time allowed to fetch the orders")

	return cmd
}

func (tc *TableCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), tc.timeout)
	defer cancel()

	settings, err := tc.settings()
	if err != nil {
		return err
	}

	kind := settings.Source.Kind
	if tc.source != "" {
		kind = tc.source
	}

	src, err := tc.registry.Create(ctx, kind, settings.Source)
	if err != nil {
		return fmt.Errorf("failed to create source %s: %w", kind, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close source")
		}
	}()

	ctrl := orders.NewController(src)
	if err := ctrl.Fetch(ctx); err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	cfg := settings.Pivot.PivotConfig()
	if tc.row != "" {
		cfg.RowDimension = tc.row
	}
	if tc.sub != "" {
		cfg.RowSubDimension = tc.sub
	}
	if tc.col != "" {
		cfg.ColDimension = tc.col
	}
	if tc.measure != "" {
		cfg.Measure = tc.measure
	}

	data, err := pivot.FormatData(ctx, ctrl.State().Value, cfg)
	if err != nil {
		return fmt.Errorf("failed to format pivot: %w", err)
	}

	return tc.reporter.Handle(data, pivot.NewTableLabels(cfg))
}
