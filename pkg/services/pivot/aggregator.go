package pivot

import (
	"math"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Aggregate cross-tabulates orders into one column template per column key
// plus a trailing grand total column. Contributions whose row or sub key is
// missing from rows are left out of every total and reported as diagnostics.
func Aggregate(
	orders []domain.Order,
	rows domain.RowKeyStructure,
	cfg domain.PivotConfig,
) (domain.FormattedTable, []domain.Diagnostic, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, nil, err
	}

	grandTotals := BuildTemplate(rows)
	var grandTotal int64
	var diagnostics []domain.Diagnostic
	seen := make([]bool, len(rows))

	columns := groupColumns(orders, cfg.ColDimension)
	table := make(domain.FormattedTable, 0, len(columns)+1)

	for _, col := range columns {
		totals := BuildTemplate(rows)
		var columnTotal int64

		for _, rowGroup := range groupByString(col.orders, cfg.RowDimension) {
			ri := rows.IndexOf(rowGroup.key)
			if ri < 0 {
				amount, _ := sumMeasure(rowGroup.orders, cfg.Measure)
				diagnostics = append(diagnostics, domain.Diagnostic{
					Kind:   domain.DiagnosticUnknownRowKey,
					Column: col.key,
					RowKey: rowGroup.key,
					Amount: amount,
				})
				continue
			}
			seen[ri] = true

			slots := totals[ri]
			subtotal := len(slots) - 1
			for _, subGroup := range groupByString(rowGroup.orders, cfg.RowSubDimension) {
				total, ok := sumMeasure(subGroup.orders, cfg.Measure)
				si := rows.SubKeyIndex(ri, subGroup.key)
				if si < 0 {
					diagnostics = append(diagnostics, domain.Diagnostic{
						Kind:   domain.DiagnosticUnknownSubKey,
						Column: col.key,
						RowKey: rowGroup.key,
						SubKey: subGroup.key,
						Amount: total,
					})
					continue
				}

				// Every running total must absorb the contribution or none does.
				if !ok || addOverflows(total, slots[subtotal], columnTotal, grandTotal,
					grandTotals[ri][si], grandTotals[ri][subtotal]) {
					diagnostics = append(diagnostics, domain.Diagnostic{
						Kind:   domain.DiagnosticMeasureOverflow,
						Column: col.key,
						RowKey: rowGroup.key,
						SubKey: subGroup.key,
						Amount: total,
					})
					continue
				}

				slots[si] = total
				slots[subtotal] += total
				columnTotal += total
				grandTotal += total
				grandTotals[ri][si] += total
				grandTotals[ri][subtotal] += total
			}
		}

		totals[len(totals)-1] = []int64{columnTotal}
		table = append(table, domain.Column{Key: col.key, Values: totals})
	}

	for i, ok := range seen {
		if !ok {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:   domain.DiagnosticMissingRowOrders,
				RowKey: rows[i].Key,
			})
		}
	}

	grandTotals[len(grandTotals)-1] = []int64{grandTotal}
	table = append(table, domain.Column{Key: domain.GrandTotalKey, Values: grandTotals})

	return table, diagnostics, nil
}

var (
	maxSum = decimal.NewFromInt(math.MaxInt64)
	minSum = decimal.NewFromInt(math.MinInt64)
)

// sumMeasure adds up the measure and rounds half away from zero. NaN and
// infinite values count as zero. A sum outside the int64 range is clamped to
// the nearest bound and reported with ok false.
func sumMeasure(orders []domain.Order, measure string) (total int64, ok bool) {
	sum := decimal.Zero
	for _, o := range orders {
		v, _ := o.NumericField(measure)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	sum = sum.Round(0)
	switch {
	case sum.GreaterThan(maxSum):
		return math.MaxInt64, false
	case sum.LessThan(minSum):
		return math.MinInt64, false
	}
	return sum.IntPart(), true
}

// addOverflows reports whether adding v to any of the accumulators leaves the
// int64 range.
func addOverflows(v int64, accumulators ...int64) bool {
	for _, acc := range accumulators {
		if (v > 0 && acc > math.MaxInt64-v) || (v < 0 && acc < math.MinInt64-v) {
			return true
		}
	}
	return false
}
