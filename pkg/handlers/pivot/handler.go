package pivot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/services/pivot"
	"github.com/rs/zerolog"
)

// OrdersController is the part of orders.Controller the handler needs.
type OrdersController interface {
	SourceName() string
	State() orders.OrdersState
	Fetch(ctx context.Context) error
}

// SourceLister lists the order sources the server knows about.
type SourceLister interface {
	ListSources() []string
}

type Handler struct {
	orders   OrdersController
	sources  SourceLister
	defaults domain.PivotConfig
}

func NewHandler(orders OrdersController, sources SourceLister, defaults domain.PivotConfig) *Handler {
	return &Handler{
		orders:   orders,
		sources:  sources,
		defaults: defaults,
	}
}

// GetPivot renders the current orders with the default pivot configuration,
// overridden by the row, sub, col and measure query parameters.
func (h *Handler) GetPivot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	state := h.orders.State()
	if !state.Loaded() {
		writeJSON(ctx, w, http.StatusServiceUnavailable,
			adapters.MapRemoteOrdersToStatus(state, h.orders.SourceName()))
		return
	}

	cfg := h.configFromQuery(r)
	data, err := pivot.FormatData(ctx, state.Value, cfg)
	if err != nil {
		if pivot.IsConfigError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("failed to format pivot")
		http.Error(w, "failed to format pivot", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapFormattedDataToAPI(data, pivot.NewTableLabels(cfg)))
}

func (h *Handler) configFromQuery(r *http.Request) domain.PivotConfig {
	cfg := h.defaults
	q := r.URL.Query()
	if v := q.Get("row"); v != "" {
		cfg.RowDimension = v
	}
	if v := q.Get("sub"); v != "" {
		cfg.RowSubDimension = v
	}
	if v := q.Get("col"); v != "" {
		cfg.ColDimension = v
	}
	if v := q.Get("measure"); v != "" {
		cfg.Measure = v
	}
	return cfg
}

func (h *Handler) GetOrdersStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, adapters.MapRemoteOrdersToStatus(h.orders.State(), h.orders.SourceName()))
}

// RefreshOrders starts a fetch in the background and answers right away.
func (h *Handler) RefreshOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fetchCtx := context.WithoutCancel(ctx)

	go func() {
		err := h.orders.Fetch(fetchCtx)
		switch {
		case errors.Is(err, orders.ErrFetchInProgress):
			zerolog.Ctx(fetchCtx).Debug().Msg("orders refresh skipped, fetch in progress")
		case err != nil:
			zerolog.Ctx(fetchCtx).Warn().Err(err).Msg("orders refresh failed")
		}
	}()

	status := adapters.MapRemoteOrdersToStatus(h.orders.State(), h.orders.SourceName())
	status.IsFetching = true
	writeJSON(ctx, w, http.StatusAccepted, status)
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := []api.Source{}
	for _, name := range h.sources.ListSources() {
		response = append(response, api.Source{Name: name})
	}
	writeJSON(ctx, w, http.StatusOK, response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
