package store

import "time"

// OrderRecord is a row of the orders table.
type OrderRecord struct {
	RowID        float64
	OrderID      string
	OrderDate    string
	ShipDate     string
	ShipMode     string
	CustomerID   string
	CustomerName string
	Segment      string
	Country      string
	City         string
	State        string
	PostalCode   float64
	Region       string
	ProductID    string
	Category     string
	SubCategory  string
	ProductName  string
	Sales        float64
	Quantity     float64
	Discount     float64
	Profit       float64
}

type OrderStats struct {
	RecordsCount int64
	LastSyncedAt *time.Time
}
