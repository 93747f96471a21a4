package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/report-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger    zerolog.Logger
	dashboard *dashboard.Service
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	Logger    *zerolog.Logger
	Dashboard *dashboard.Service
	Reporter  []export.Option
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Dashboard == nil {
		opts.Dashboard = dashboard.NewService()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		logger:    logger,
		dashboard: opts.Dashboard,
		reporter:  export.NewReporter(opts.Output, opts.Reporter...),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reports",
		Short:         "Opportunity report builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewEvaluateCmd(cli.reporter))
	cmd.AddCommand(commands.NewFieldsCmd(cli.reporter))
	cmd.AddCommand(commands.NewDashboardCmd(cli.dashboard, cli.reporter))
	cmd.AddCommand(commands.NewImportCmd())

	return cmd
}
