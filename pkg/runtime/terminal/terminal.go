package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry   orders.Registry
	reporter   *export.Reporter
	logger     zerolog.Logger
	configPath string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry   orders.Registry
	Output     io.Writer
	Logger     *zerolog.Logger
	ConfigPath string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		registry:   opts.Registry,
		reporter:   export.NewReporter(opts.Output),
		logger:     logger,
		configPath: opts.ConfigPath,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.ExecuteContext(context.Background())
}

// SetArgs overrides the arguments taken from os.Args.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) loadSettings() (*config.Settings, error) {
	return config.LoadSettings(cli.configPath)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sales-atlas",
		Short:         "Sales orders pivot tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(cli.logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", cli.configPath,
		"Path to the settings file (YAML, TOML or JSON)")

	cmd.AddCommand(commands.NewTableCmd(cli.registry, cli.reporter, cli.loadSettings))
	cmd.AddCommand(commands.NewSourcesCmd(cli.registry))
	cmd.AddCommand(commands.NewSyncCmd(cli.registry, cli.loadSettings))

	return cmd
}
