package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/de-tools/sales-atlas/pkg/services/orders/sources"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (YAML, TOML or JSON)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx, cancel := context.WithCancel(logger.WithContext(cmd.Context()))
	defer cancel()

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry := sources.NewDefaultRegistry()
	src, err := registry.Create(ctx, settings.Source.Kind, settings.Source)
	if err != nil {
		return fmt.Errorf("failed to create order source %s: %w", settings.Source.Kind, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close order source")
		}
	}()

	ordersCtrl := orders.NewController(src)
	go ordersCtrl.Run(ctx, settings.Source.RefreshInterval)

	logger.Info().Msgf("Orders are served from the `%s` source.", src.Name())

	addr := net.JoinHostPort(settings.Server.Host, settings.Server.Port)
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Pivot:           settings.Pivot.PivotConfig(),
		Dependencies: server.Dependencies{
			Orders:  ordersCtrl,
			Sources: registry,
			Logger:  logger,
		},
	})

	return api.Start()
}
