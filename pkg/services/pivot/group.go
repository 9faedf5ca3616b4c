package pivot

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type orderGroup struct {
	key    string
	orders []domain.Order
}

// groupByString buckets orders by a string field, keys ascending. Orders keep
// their input order within a bucket.
func groupByString(orders []domain.Order, field string) []orderGroup {
	buckets := make(map[string][]domain.Order)
	for _, o := range orders {
		k, _ := o.StringField(field)
		buckets[k] = append(buckets[k], o)
	}

	groups := make([]orderGroup, 0, len(buckets))
	for _, k := range slices.Sorted(maps.Keys(buckets)) {
		groups = append(groups, orderGroup{key: k, orders: buckets[k]})
	}
	return groups
}

// groupByNumber buckets orders by a numeric field, keys ascending numerically.
func groupByNumber(orders []domain.Order, field string) []orderGroup {
	buckets := make(map[float64][]domain.Order)
	for _, o := range orders {
		v, _ := o.NumericField(field)
		if math.IsNaN(v) {
			v = 0
		}
		buckets[v] = append(buckets[v], o)
	}

	groups := make([]orderGroup, 0, len(buckets))
	for _, v := range slices.Sorted(maps.Keys(buckets)) {
		groups = append(groups, orderGroup{
			key:    strconv.FormatFloat(v, 'f', -1, 64),
			orders: buckets[v],
		})
	}
	return groups
}

func groupColumns(orders []domain.Order, field string) []orderGroup {
	if domain.IsNumericField(field) {
		return groupByNumber(orders, field)
	}
	return groupByString(orders, field)
}
