package commands

import (
	"fmt"

	"banking-reports/internal/cli/export"

	"github.com/spf13/cobra"
)

type CatalogCmd struct {
	format   string
	runtime  *Runtime
	reporter *export.Reporter
}

func NewCatalogCmd(rt *Runtime, reporter *export.Reporter) *cobra.Command {
	cc := &CatalogCmd{runtime: rt, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the supported report domains and types",
		Args:  cobra.NoArgs,
		RunE:  cc.run,
	}
	cmd.Flags().StringVar(&cc.format, "format", formatText, "Output format (text or json)")
	return cmd
}

func (cc *CatalogCmd) run(cmd *cobra.Command, args []string) error {
	engine, err := cc.runtime.engine(nil)
	if err != nil {
		return err
	}

	entries := engine.Dispatcher.Catalog()
	switch cc.format {
	case formatText:
		return cc.reporter.Catalog(entries)
	case formatJSON:
		return cc.reporter.JSON(entries)
	default:
		return fmt.Errorf("unsupported format %q, expected %s or %s", cc.format, formatText, formatJSON)
	}
}
