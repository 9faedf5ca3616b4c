package domain

import "slices"

// Order is a single sales order line. It carries string dimension fields and
// numeric measure fields and is never mutated once built.
type Order struct {
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

// DefaultOrder is the order every partial input is merged over.
var DefaultOrder = Order{}

// Field names as they appear on the wire and in pivot configuration.
const (
	FieldRowID        = "rowId"
	FieldOrderID      = "orderId"
	FieldOrderDate    = "orderDate"
	FieldShipDate     = "shipDate"
	FieldShipMode     = "shipMode"
	FieldCustomerID   = "customerId"
	FieldCustomerName = "customerName"
	FieldSegment      = "segment"
	FieldCountry      = "country"
	FieldCity         = "city"
	FieldState        = "state"
	FieldPostalCode   = "postalCode"
	FieldRegion       = "region"
	FieldProductID    = "productId"
	FieldCategory     = "category"
	FieldSubCategory  = "subCategory"
	FieldProductName  = "productName"
	FieldSales        = "sales"
	FieldQuantity     = "quantity"
	FieldDiscount     = "discount"
	FieldProfit       = "profit"
)

var stringFields = []string{
	FieldOrderID, FieldOrderDate, FieldShipDate, FieldShipMode, FieldCustomerID,
	FieldCustomerName, FieldSegment, FieldCountry, FieldCity, FieldState,
	FieldRegion, FieldProductID, FieldCategory, FieldSubCategory, FieldProductName,
}

var numericFields = []string{
	FieldRowID, FieldPostalCode, FieldSales, FieldQuantity, FieldDiscount, FieldProfit,
}

// measureFields are the numeric fields that can be summed in a pivot.
var measureFields = []string{
	FieldSales, FieldQuantity, FieldProfit, FieldDiscount,
}

func StringFields() []string  { return slices.Clone(stringFields) }
func NumericFields() []string { return slices.Clone(numericFields) }
func MeasureFields() []string { return slices.Clone(measureFields) }

func IsStringField(name string) bool  { return slices.Contains(stringFields, name) }
func IsNumericField(name string) bool { return slices.Contains(numericFields, name) }
func IsMeasureField(name string) bool { return slices.Contains(measureFields, name) }

// StringField returns the value of the named string field.
func (o Order) StringField(name string) (string, bool) {
	switch name {
	case FieldOrderID:
		return o.OrderID, true
	case FieldOrderDate:
		return o.OrderDate, true
	case FieldShipDate:
		return o.ShipDate, true
	case FieldShipMode:
		return o.ShipMode, true
	case FieldCustomerID:
		return o.CustomerID, true
	case FieldCustomerName:
		return o.CustomerName, true
	case FieldSegment:
		return o.Segment, true
	case FieldCountry:
		return o.Country, true
	case FieldCity:
		return o.City, true
	case FieldState:
		return o.State, true
	case FieldRegion:
		return o.Region, true
	case FieldProductID:
		return o.ProductID, true
	case FieldCategory:
		return o.Category, true
	case FieldSubCategory:
		return o.SubCategory, true
	case FieldProductName:
		return o.ProductName, true
	}
	return "", false
}

// NumericField returns the value of the named numeric field.
func (o Order) NumericField(name string) (float64, bool) {
	switch name {
	case FieldRowID:
		return o.RowID, true
	case FieldPostalCode:
		return o.PostalCode, true
	case FieldSales:
		return o.Sales, true
	case FieldQuantity:
		return o.Quantity, true
	case FieldDiscount:
		return o.Discount, true
	case FieldProfit:
		return o.Profit, true
	}
	return 0, false
}
