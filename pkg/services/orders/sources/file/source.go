package file

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
)

// Source reads orders from a local JSON fixture on every fetch.
type Source struct {
	path string
}

func SourceFactory(_ context.Context, settings config.SourceSettings) (orders.Source, error) {
	return NewSource(settings.File.Path)
}

func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("orders file path is required")
	}
	return &Source{path: path}, nil
}

func (s *Source) Name() string {
	return config.SourceFile
}

func (s *Source) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	return orders.DecodeOrders(f)
}

func (s *Source) Close() error {
	return nil
}
