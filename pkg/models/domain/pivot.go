package domain

import "fmt"

// GrandTotalKey is the synthetic column appended after every real column.
const GrandTotalKey = "Grand Total"

// PivotConfig selects the fields a pivot groups and sums by.
type PivotConfig struct {
	RowDimension    string
	RowSubDimension string
	ColDimension    string
	Measure         string
}

// DefaultPivotConfig is the sales by category/sub-category and state view.
func DefaultPivotConfig() PivotConfig {
	return PivotConfig{
		RowDimension:    FieldCategory,
		RowSubDimension: FieldSubCategory,
		ColDimension:    FieldState,
		Measure:         FieldSales,
	}
}

// RowKey is a row dimension value and the sub-dimension values nested under it.
type RowKey struct {
	Key     string
	SubKeys []string
}

// RowKeyStructure is ordered ascending by Key.
type RowKeyStructure []RowKey

// IndexOf returns the position of key, or -1.
func (rs RowKeyStructure) IndexOf(key string) int {
	for i, r := range rs {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// SubKeyIndex returns the position of subKey under row i, or -1.
func (rs RowKeyStructure) SubKeyIndex(i int, subKey string) int {
	if i < 0 || i >= len(rs) {
		return -1
	}
	for j, s := range rs[i].SubKeys {
		if s == subKey {
			return j
		}
	}
	return -1
}

// ColumnTemplate holds one slot-group per row key, each ending with the row
// subtotal, followed by a single-slot group with the column total.
type ColumnTemplate [][]int64

// Subtotal returns the subtotal slot of row group i.
func (t ColumnTemplate) Subtotal(i int) int64 {
	g := t[i]
	return g[len(g)-1]
}

// Total returns the column grand total.
func (t ColumnTemplate) Total() int64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1][0]
}

// RowGroups returns the slot-groups without the trailing total group.
func (t ColumnTemplate) RowGroups() [][]int64 {
	if len(t) == 0 {
		return nil
	}
	return t[:len(t)-1]
}

type Column struct {
	Key    string
	Values ColumnTemplate
}

// FormattedTable is ordered by column key with the grand total column last.
type FormattedTable []Column

// Get returns the template of the named column.
func (ft FormattedTable) Get(key string) (ColumnTemplate, bool) {
	for _, c := range ft {
		if c.Key == key {
			return c.Values, true
		}
	}
	return nil, false
}

// Keys returns the column keys in order.
func (ft FormattedTable) Keys() []string {
	keys := make([]string, len(ft))
	for i, c := range ft {
		keys[i] = c.Key
	}
	return keys
}

type DiagnosticKind string

const (
	DiagnosticUnknownRowKey    DiagnosticKind = "unknown_row_key"
	DiagnosticUnknownSubKey    DiagnosticKind = "unknown_sub_key"
	DiagnosticMissingRowOrders DiagnosticKind = "missing_row_orders"
	DiagnosticMeasureOverflow  DiagnosticKind = "measure_overflow"
)

// Diagnostic reports an aggregation contribution that was dropped because the
// data and the row structure disagree or its sum does not fit in an int64.
type Diagnostic struct {
	Kind   DiagnosticKind
	Column string
	RowKey string
	SubKey string
	Amount int64
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticUnknownRowKey:
		return fmt.Sprintf("column %q: row key %q not in row structure", d.Column, d.RowKey)
	case DiagnosticUnknownSubKey:
		return fmt.Sprintf("column %q: sub key %q not under row key %q", d.Column, d.SubKey, d.RowKey)
	case DiagnosticMissingRowOrders:
		return fmt.Sprintf("row key %q has no orders", d.RowKey)
	case DiagnosticMeasureOverflow:
		return fmt.Sprintf("column %q: %q / %q total exceeds the int64 range", d.Column, d.RowKey, d.SubKey)
	}
	return string(d.Kind)
}

// FormattedData is everything a renderer needs to draw the pivot.
type FormattedData struct {
	Config      PivotConfig
	Rows        RowKeyStructure
	Columns     FormattedTable
	Diagnostics []Diagnostic
}

// TableLabels are the captions of a rendered pivot.
type TableLabels struct {
	RowTitle        string
	ColTitle        string
	RowKeyTitle     string
	RowSubKeyTitle  string
	SubResultText   string
	FinalResultText string
	Metric          string
}
