package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	dbsql "github.com/databricks/databricks-sql-go"
)

// ServerHostname strips the scheme and path from a workspace host.
func ServerHostname(host string) string {
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		return u.Hostname()
	}
	return strings.TrimSuffix(host, "/")
}

// DatabricksFactory connects to a Databricks SQL warehouse using a profile
// from a .databrickscfg style file.
func DatabricksFactory(ctx context.Context, settings config.SourceSettings) (orders.Source, error) {
	profiles, err := config.NewProfileRegistry(settings.Databricks.ProfilePath)
	if err != nil {
		return nil, err
	}

	profile, err := profiles.GetProfile(ctx, settings.Databricks.Profile)
	if err != nil {
		return nil, err
	}
	if profile.HTTPPath == "" {
		return nil, fmt.Errorf("profile %s has no http_path", profile.Name)
	}

	connector, err := dbsql.NewConnector(
		dbsql.WithServerHostname(ServerHostname(profile.Config.Host)),
		dbsql.WithPort(443),
		dbsql.WithHTTPPath(profile.HTTPPath),
		dbsql.WithAccessToken(profile.Config.Token),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create databricks connector: %w", err)
	}

	db := sql.OpenDB(connector)
	src, err := NewSource(config.SourceDatabricks, db, settings.Databricks.Table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return src, nil
}
