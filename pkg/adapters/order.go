package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// MapOrderPayloadToDomain merges the fields present in p over domain.DefaultOrder.
func MapOrderPayloadToDomain(p api.OrderPayload) domain.Order {
	o := domain.DefaultOrder

	setString(&o.OrderID, p.OrderID)
	setString(&o.OrderDate, p.OrderDate)
	setString(&o.ShipDate, p.ShipDate)
	setString(&o.ShipMode, p.ShipMode)
	setString(&o.CustomerID, p.CustomerID)
	setString(&o.CustomerName, p.CustomerName)
	setString(&o.Segment, p.Segment)
	setString(&o.Country, p.Country)
	setString(&o.City, p.City)
	setString(&o.State, p.State)
	setString(&o.Region, p.Region)
	setString(&o.ProductID, p.ProductID)
	setString(&o.Category, p.Category)
	setString(&o.SubCategory, p.SubCategory)
	setString(&o.ProductName, p.ProductName)

	setNumber(&o.RowID, p.RowID)
	setNumber(&o.PostalCode, p.PostalCode)
	setNumber(&o.Sales, p.Sales)
	setNumber(&o.Quantity, p.Quantity)
	setNumber(&o.Discount, p.Discount)
	setNumber(&o.Profit, p.Profit)

	return o
}

func MapOrderPayloadsToDomain(payloads []api.OrderPayload) []domain.Order {
	orders := make([]domain.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, MapOrderPayloadToDomain(p))
	}
	return orders
}

func MapStoreOrderToDomain(r store.OrderRecord) domain.Order {
	return domain.Order{
		RowID:        r.RowID,
		OrderID:      r.OrderID,
		OrderDate:    r.OrderDate,
		ShipDate:     r.ShipDate,
		ShipMode:     r.ShipMode,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Segment:      r.Segment,
		Country:      r.Country,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Region:       r.Region,
		ProductID:    r.ProductID,
		Category:     r.Category,
		SubCategory:  r.SubCategory,
		ProductName:  r.ProductName,
		Sales:        r.Sales,
		Quantity:     r.Quantity,
		Discount:     r.Discount,
		Profit:       r.Profit,
	}
}

func MapDomainOrderToStore(o domain.Order) store.OrderRecord {
	return store.OrderRecord{
		RowID:        o.RowID,
		OrderID:      o.OrderID,
		OrderDate:    o.OrderDate,
		ShipDate:     o.ShipDate,
		ShipMode:     o.ShipMode,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Segment:      o.Segment,
		Country:      o.Country,
		City:         o.City,
		State:        o.State,
		PostalCode:   o.PostalCode,
		Region:       o.Region,
		ProductID:    o.ProductID,
		Category:     o.Category,
		SubCategory:  o.SubCategory,
		ProductName:  o.ProductName,
		Sales:        o.Sales,
		Quantity:     o.Quantity,
		Discount:     o.Discount,
		Profit:       o.Profit,
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNumber(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
