package api

// OrderPayload is an order as delivered by a source. Absent fields stay nil and
// fall back to the default order when mapped to the domain.
type OrderPayload struct {
	RowID        *float64 `json:"rowId,omitempty"`
	OrderID      *string  `json:"orderId,omitempty"`
	OrderDate    *string  `json:"orderDate,omitempty"`
	ShipDate     *string  `json:"shipDate,omitempty"`
	ShipMode     *string  `json:"shipMode,omitempty"`
	CustomerID   *string  `json:"customerId,omitempty"`
	CustomerName *string  `json:"customerName,omitempty"`
	Segment      *string  `json:"segment,omitempty"`
	Country      *string  `json:"country,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	PostalCode   *float64 `json:"postalCode,omitempty"`
	Region       *string  `json:"region,omitempty"`
	ProductID    *string  `json:"productId,omitempty"`
	Category     *string  `json:"category,omitempty"`
	SubCategory  *string  `json:"subCategory,omitempty"`
	ProductName  *string  `json:"productName,omitempty"`
	Sales        *float64 `json:"sales,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Discount     *float64 `json:"discount,omitempty"`
	Profit       *float64 `json:"profit,omitempty"`
}

type OrdersStatus struct {
	IsFetching    bool   `json:"is_fetching"`
	DidInvalidate bool   `json:"did_invalidate"`
	DidEverLoad   bool   `json:"did_ever_load"`
	Loaded        bool   `json:"loaded"`
	Error         string `json:"error,omitempty"`
	Count         int    `json:"count"`
	Source        string `json:"source"`
}

type Source struct {
	Name string `json:"name"`
}
