package cli

import (
	"context"
	"io"
	"os"

	"banking-reports/internal/cli/commands"
	"banking-reports/internal/cli/export"
	"banking-reports/internal/config"
	"banking-reports/internal/database"

	"github.com/spf13/cobra"
)

// CLI represents the reportctl command-line interface
type CLI struct {
	runtime  *commands.Runtime
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Config *config.Config
	// Connect opens the ledger, database.Initialize when nil
	Connect func(cfg *config.Config) (*database.DB, error)
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Connect == nil {
		opts.Connect = database.Initialize
	}

	cli := &CLI{
		runtime: &commands.Runtime{
			Config:  opts.Config,
			Connect: opts.Connect,
		},
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

// Execute runs the command named by args
func (cli *CLI) Execute(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Banking report engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(output)
	cmd.PersistentFlags().StringVar(&cli.runtime.PolicyFile, "policy", cli.runtime.Config.Reports.PolicyFile,
		"Path to a YAML or JSON policy file overriding the default business constants")

	cmd.AddCommand(commands.NewGenerateCmd(cli.runtime, cli.reporter))
	cmd.AddCommand(commands.NewSummarizeCmd(cli.runtime, cli.reporter))
	cmd.AddCommand(commands.NewCatalogCmd(cli.runtime, cli.reporter))
	cmd.AddCommand(commands.NewSeedCmd(cli.runtime, cli.reporter))
	cmd.AddCommand(commands.NewMigrateCmd(cli.runtime, cli.reporter))

	return cmd
}
