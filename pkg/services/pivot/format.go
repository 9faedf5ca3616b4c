package pivot

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// FormatData validates cfg, extracts the row structure from orders and
// aggregates them. Diagnostics are logged and returned with the result.
func FormatData(ctx context.Context, orders []domain.Order, cfg domain.PivotConfig) (*domain.FormattedData, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	rows, err := ExtractRowStructure(orders, cfg.RowDimension, cfg.RowSubDimension)
	if err != nil {
		return nil, err
	}

	columns, diagnostics, err := Aggregate(orders, rows, cfg)
	if err != nil {
		return nil, err
	}

	for _, d := range diagnostics {
		logger.Warn().
			Str("kind", string(d.Kind)).
			Str("column", d.Column).
			Str("row_key", d.RowKey).
			Str("sub_key", d.SubKey).
			Int64("amount", d.Amount).
			Msg("pivot contribution dropped")
	}

	logger.Debug().
		Int("orders", len(orders)).
		Int("rows", len(rows)).
		Int("columns", len(columns)).
		Msg("pivot formatted")

	return &domain.FormattedData{
		Config:      cfg,
		Rows:        rows,
		Columns:     columns,
		Diagnostics: diagnostics,
	}, nil
}
