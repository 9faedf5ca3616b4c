package sources

import (
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/services/orders/sources/embedded"
	"github.com/de-tools/sales-atlas/pkg/services/orders/sources/file"
	"github.com/de-tools/sales-atlas/pkg/services/orders/sources/s3"
	"github.com/de-tools/sales-atlas/pkg/services/orders/sources/warehouse"
)

// NewDefaultRegistry registers every built-in order source.
func NewDefaultRegistry() orders.Registry {
	return orders.NewRegistry(map[string]orders.SourceFactory{
		config.SourceFile:       file.SourceFactory,
		config.SourceS3:         s3.SourceFactory,
		config.SourceDuckDB:     embedded.SourceFactory,
		config.SourceSnowflake:  warehouse.SnowflakeFactory,
		config.SourceDatabricks: warehouse.DatabricksFactory,
	})
}
