package orders

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
)

// Source supplies the full, current list of orders.
type Source interface {
	Name() string
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	Close() error
}

// SourceFactory builds a Source from settings.
type SourceFactory func(ctx context.Context, settings config.SourceSettings) (Source, error)

// Registry manages source factories by kind
type Registry interface {
	// Register adds a new source factory
	Register(kind string, factory SourceFactory) error
	// Create instantiates the source of the given kind
	Create(ctx context.Context, kind string, settings config.SourceSettings) (Source, error)
	// ListSources returns the registered kinds, sorted
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

func NewRegistry(factories map[string]SourceFactory) Registry {
	r := &registry{
		factories: make(map[string]SourceFactory, len(factories)),
	}
	for kind, f := range factories {
		r.factories[kind] = f
	}
	return r
}

func (r *registry) Register(kind string, factory SourceFactory) error {
	if kind == "" {
		return fmt.Errorf("source kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("source %q is already registered", kind)
	}

	r.factories[kind] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, kind string, settings config.SourceSettings) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", kind)
	}

	return factory(ctx, settings)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}
