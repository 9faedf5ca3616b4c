package pivot

import (
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidMeasure   = errors.New("invalid measure")
)

// ValidateConfig checks that every field named by cfg exists and has a usable
// type: row dimensions must be string fields, the column dimension any field
// and the measure a quantifiable field.
func ValidateConfig(cfg domain.PivotConfig) error {
	if !domain.IsStringField(cfg.RowDimension) {
		return fmt.Errorf("row dimension %q must be a string field: %w", cfg.RowDimension, ErrInvalidDimension)
	}
	if !domain.IsStringField(cfg.RowSubDimension) {
		return fmt.Errorf("row sub dimension %q must be a string field: %w", cfg.RowSubDimension, ErrInvalidDimension)
	}
	if !domain.IsStringField(cfg.ColDimension) && !domain.IsNumericField(cfg.ColDimension) {
		return fmt.Errorf("column dimension %q is not an order field: %w", cfg.ColDimension, ErrInvalidDimension)
	}
	if !domain.IsMeasureField(cfg.Measure) {
		return fmt.Errorf("measure %q must be one of %v: %w", cfg.Measure, domain.MeasureFields(), ErrInvalidMeasure)
	}
	return nil
}

// IsConfigError reports whether err comes from pivot configuration validation.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidDimension) || errors.Is(err, ErrInvalidMeasure)
}
