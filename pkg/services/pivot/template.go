package pivot

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// BuildTemplate returns a zeroed column template for rows: one slot per
// sub-key plus a subtotal slot for every row key, then the column total slot.
// Every call allocates fresh slices.
func BuildTemplate(rows domain.RowKeyStructure) domain.ColumnTemplate {
	t := make(domain.ColumnTemplate, 0, len(rows)+1)
	for _, r := range rows {
		t = append(t, make([]int64, len(r.SubKeys)+1))
	}
	return append(t, []int64{0})
}
