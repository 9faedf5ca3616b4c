package commands

import "github.com/de-tools/sales-atlas/pkg/services/config"

// SettingsLoader loads the application settings for a command run.
type SettingsLoader func() (*config.Settings, error)
