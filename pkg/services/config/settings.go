package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALES_ATLAS"

// Source kinds understood by the orders registry.
const (
	SourceFile       = "file"
	SourceS3         = "s3"
	SourceDuckDB     = "duckdb"
	SourceSnowflake  = "snowflake"
	SourceDatabricks = "databricks"
)

type Settings struct {
	Source SourceSettings `mapstructure:"source"`
	Pivot  PivotSettings  `mapstructure:"pivot"`
	Store  StoreSettings  `mapstructure:"store"`
	Server ServerSettings `mapstructure:"server"`
	Sync   SyncSettings   `mapstructure:"sync"`
}

type SourceSettings struct {
	Kind            string             `mapstructure:"kind"`
	RefreshInterval time.Duration      `mapstructure:"refresh_interval"`
	File            FileSettings       `mapstructure:"file"`
	S3              S3Settings         `mapstructure:"s3"`
	Snowflake       SnowflakeSettings  `mapstructure:"snowflake"`
	Databricks      DatabricksSettings `mapstructure:"databricks"`
	Store           StoreSettings      `mapstructure:"-"`
}

type FileSettings struct {
	Path string `mapstructure:"path"`
}

type S3Settings struct {
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
	Region string `mapstructure:"region"`
}

type SnowflakeSettings struct {
	Account   string `mapstructure:"account"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	Schema    string `mapstructure:"schema"`
	Warehouse string `mapstructure:"warehouse"`
	Role      string `mapstructure:"role"`
	Table     string `mapstructure:"table"`
}

type DatabricksSettings struct {
	ProfilePath string `mapstructure:"profile_path"`
	Profile     string `mapstructure:"profile"`
	Table       string `mapstructure:"table"`
}

type StoreSettings struct {
	Path    string `mapstructure:"path"`
	Threads int    `mapstructure:"threads"`
}

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SyncSettings struct {
	Source   string        `mapstructure:"source"`
	Interval time.Duration `mapstructure:"interval"`
}

type PivotSettings struct {
	RowDimension    string `mapstructure:"row_dimension"`
	RowSubDimension string `mapstructure:"row_sub_dimension"`
	ColDimension    string `mapstructure:"col_dimension"`
	Measure         string `mapstructure:"measure"`
}

func (p PivotSettings) PivotConfig() domain.PivotConfig {
	return domain.PivotConfig{
		RowDimension:    p.RowDimension,
		RowSubDimension: p.RowSubDimension,
		ColDimension:    p.ColDimension,
		Measure:         p.Measure,
	}
}

func setDefaults(v *viper.Viper) {
	def := domain.DefaultPivotConfig()

	v.SetDefault("source.kind", SourceFile)
	v.SetDefault("source.refresh_interval", time.Duration(0))
	v.SetDefault("source.file.path", "data/orders.json")
	v.SetDefault("source.s3.bucket", "")
	v.SetDefault("source.s3.key", "orders.json")
	v.SetDefault("source.s3.region", "us-east-1")
	v.SetDefault("source.snowflake.account", "")
	v.SetDefault("source.snowflake.user", "")
	v.SetDefault("source.snowflake.password", "")
	v.SetDefault("source.snowflake.database", "")
	v.SetDefault("source.snowflake.schema", "")
	v.SetDefault("source.snowflake.warehouse", "")
	v.SetDefault("source.snowflake.role", "")
	v.SetDefault("source.snowflake.table", "orders")
	v.SetDefault("source.databricks.profile_path", "")
	v.SetDefault("source.databricks.profile", "DEFAULT")
	v.SetDefault("source.databricks.table", "orders")

	v.SetDefault("pivot.row_dimension", def.RowDimension)
	v.SetDefault("pivot.row_sub_dimension", def.RowSubDimension)
	v.SetDefault("pivot.col_dimension", def.ColDimension)
	v.SetDefault("pivot.measure", def.Measure)

	v.SetDefault("store.path", "sales-atlas.db")
	v.SetDefault("store.threads", 4)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("sync.source", "")
	v.SetDefault("sync.interval", time.Hour)
}

// LoadSettings reads the settings file at path, if any, over the defaults.
// Every key can be overridden with a SALES_ATLAS_ prefixed environment
// variable, e.g. SALES_ATLAS_SOURCE_KIND. SERVER_HOST and SERVER_PORT are
// honoured as well.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.host", EnvPrefix+"_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "SERVER_PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	settings.Source.Store = settings.Store
	return &settings, nil
}
