package pivot

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// ExtractRowStructure derives the ordered row keys and, for each, the ordered
// distinct sub-keys observed in orders.
func ExtractRowStructure(orders []domain.Order, rowDimension, rowSubDimension string) (domain.RowKeyStructure, error) {
	if !domain.IsStringField(rowDimension) {
		return nil, fmt.Errorf("row dimension %q must be a string field: %w", rowDimension, ErrInvalidDimension)
	}
	if !domain.IsStringField(rowSubDimension) {
		return nil, fmt.Errorf("row sub dimension %q must be a string field: %w", rowSubDimension, ErrInvalidDimension)
	}

	groups := groupByString(orders, rowDimension)
	rows := make(domain.RowKeyStructure, 0, len(groups))
	for _, g := range groups {
		subGroups := groupByString(g.orders, rowSubDimension)
		subKeys := make([]string, len(subGroups))
		for i, sg := range subGroups {
			subKeys[i] = sg.key
		}
		rows = append(rows, domain.RowKey{Key: g.key, SubKeys: subKeys})
	}
	return rows, nil
}
