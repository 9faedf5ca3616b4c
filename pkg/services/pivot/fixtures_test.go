package pivot

import "github.com/de-tools/sales-atlas/pkg/models/domain"

func order(category, subCategory, state string, sales float64) domain.Order {
	return domain.Order{Category: category, SubCategory: subCategory, State: state, Sales: sales}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		order("Cups", "Mugs", "New York", 230),
		order("Utensils", "Knives", "New York", 129),
		order("Utensils", "Forks", "New York", 415),
		order("Cups", "Tumblers", "California", 82),
		order("Utensils", "Knives", "California", 888),
		order("Utensils", "Spoons", "New York", 479),
		order("Cups", "Mugs", "California", 757),
	}
}
