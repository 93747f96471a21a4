package commands

import (
	"fmt"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type DashboardCmd struct {
	source   recordSource
	format   string
	service  *dashboard.Service
	reporter *export.Reporter
}

func NewDashboardCmd(service *dashboard.Service, reporter *export.Reporter) *cobra.Command {
	dc := &DashboardCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show closed deals, top sellers and monthly stage counts",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.format, "format", FormatTable, "Output format: table or json")
	dc.source.bind(cmd)

	return cmd
}

func (dc *DashboardCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider, closer, err := dc.source.provider(ctx)
	if err != nil {
		return err
	}
	defer closer()

	records, err := provider.ListOpportunities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load opportunities: %w", err)
	}

	result := dc.service.Build(ctx, records)
	if dc.format == FormatJSON {
		return dc.reporter.HandleJSON(adapters.MapDomainDashboardToApi(result))
	}

	money, err := report.NewCurrencyFormatter(report.DefaultLocale, report.DefaultCurrency)
	if err != nil {
		return err
	}
	return dc.reporter.HandleDashboard(result, money, dashboard.TrackedStages)
}
