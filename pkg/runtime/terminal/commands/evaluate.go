package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type EvaluateCmd struct {
	source     recordSource
	configPath string
	format     string
	locale     string
	currency   string
	reporter   *export.Reporter
}

func NewEvaluateCmd(reporter *export.Reporter) *cobra.Command {
	ec := &EvaluateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a report configuration against opportunity records",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.configPath, "config", "", "Path to the report configuration (JSON, comments allowed)")
	cmd.Flags().StringVar(&ec.format, "format", FormatTable, "Output format: table or json")
	cmd.Flags().StringVar(&ec.locale, "locale", report.DefaultLocale, "Locale used for monetary values")
	cmd.Flags().StringVar(&ec.currency, "currency", report.DefaultCurrency, "ISO 4217 currency code")
	ec.source.bind(cmd)

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (ec *EvaluateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if ec.format != FormatTable && ec.format != FormatJSON {
		return fmt.Errorf("unsupported format %q", ec.format)
	}

	cfg, err := ReadReportConfigFile(ec.configPath)
	if err != nil {
		return err
	}

	evaluator, err := report.NewEvaluator(report.Settings{Locale: ec.locale, Currency: ec.currency})
	if err != nil {
		return err
	}

	provider, closer, err := ec.source.provider(ctx)
	if err != nil {
		return err
	}
	defer closer()

	records, err := provider.ListOpportunities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load opportunities: %w", err)
	}

	result := domain.ReportResult{
		Report: cfg,
		Series: evaluator.Evaluate(ctx, records, cfg),
	}
	if ec.format == FormatJSON {
		return ec.reporter.HandleJSON(adapters.MapDomainReportResultToApi(result))
	}
	return ec.reporter.HandleSeries(result)
}

// ReadReportConfigFile loads a report configuration and applies the save-time
// defaults. Comments and trailing commas are accepted.
func ReadReportConfigFile(path string) (domain.ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ReportConfig{}, fmt.Errorf("failed to read report config: %w", err)
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return domain.ReportConfig{}, fmt.Errorf("failed to parse report config %s: %w", path, err)
	}

	var wire api.ReportConfig
	if err := json.Unmarshal(standardized, &wire); err != nil {
		return domain.ReportConfig{}, fmt.Errorf("failed to decode report config %s: %w", path, err)
	}
	cfg, err := adapters.MapApiReportConfigToDomain(wire)
	if err != nil {
		return domain.ReportConfig{}, err
	}
	return cfg.WithDefaults(), nil
}
