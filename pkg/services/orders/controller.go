package orders

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type OrdersState = domain.RemoteValue[[]domain.Order]

// ErrFetchInProgress is returned by Fetch while another fetch is running.
var ErrFetchInProgress = errors.New("orders fetch already in progress")

// Controller owns the fetch state of the orders coming from one Source.
type Controller struct {
	source Source

	mu    sync.RWMutex
	state OrdersState
}

func NewController(source Source) *Controller {
	return &Controller{source: source}
}

func (c *Controller) SourceName() string {
	return c.source.Name()
}

// State returns a snapshot of the current fetch state.
func (c *Controller) State() OrdersState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Invalidate()
}

// Fetch loads the orders from the source. A previously loaded value stays
// available while fetching and after a failure. Only one fetch runs at a
// time; overlapping calls return ErrFetchInProgress.
func (c *Controller) Fetch(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("source", c.source.Name()).Logger()

	c.mu.Lock()
	if c.state.IsFetching {
		c.mu.Unlock()
		logger.Debug().Msg("orders fetch already in progress")
		return ErrFetchInProgress
	}
	c.state = c.state.Request()
	c.mu.Unlock()

	start := time.Now()
	orders, err := c.source.FetchOrders(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = c.state.Fail(err)
		logger.Error().Err(err).Msg("failed to fetch orders")
		return err
	}

	c.state = c.state.Succeed(orders)
	logger.Info().
		Int("orders", len(orders)).
		Dur("elapsed", time.Since(start)).
		Msg("orders loaded")
	return nil
}

// Run fetches immediately and then every interval until ctx is done. Failed
// fetches are retried on the next tick.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	_ = c.Fetch(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zerolog.Ctx(ctx).Info().Msg("orders refresh stopped")
			return
		case <-ticker.C:
			c.Invalidate()
			_ = c.Fetch(ctx)
		}
	}
}
