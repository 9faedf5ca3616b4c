package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	registry orders.Registry
}

func NewSourcesCmd(registry orders.Registry) *cobra.Command {
	sc := &SourcesCmd{registry: registry}
	return &cobra.Command{
		Use:   "sources",
		Short: "List supported order sources",
		RunE:  sc.run,
	}
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	sources := sc.registry.ListSources()
	if len(sources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No order sources registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported sources:\n%s\n", strings.Join(sources, "\n"))
	return nil
}
