package orders

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// DecodeOrders reads a JSON array of orders. Fields missing from an entry
// take their default values.
func DecodeOrders(r io.Reader) ([]domain.Order, error) {
	var payloads []api.OrderPayload
	if err := json.NewDecoder(r).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return adapters.MapOrderPayloadsToDomain(payloads), nil
}
