package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	sf "github.com/snowflakedb/gosnowflake"
)

func SnowflakeConfig(settings config.SnowflakeSettings) (*sf.Config, error) {
	if settings.Account == "" || settings.User == "" {
		return nil, fmt.Errorf("snowflake account and user are required")
	}
	return &sf.Config{
		Account:   settings.Account,
		User:      settings.User,
		Password:  settings.Password,
		Database:  settings.Database,
		Schema:    settings.Schema,
		Warehouse: settings.Warehouse,
		Role:      settings.Role,
	}, nil
}

// SnowflakeFactory connects to Snowflake with the source settings.
func SnowflakeFactory(_ context.Context, settings config.SourceSettings) (orders.Source, error) {
	cfg, err := SnowflakeConfig(settings.Snowflake)
	if err != nil {
		return nil, err
	}

	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	src, err := NewSource(config.SourceSnowflake, db, settings.Snowflake.Table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return src, nil
}
