package commands

import (
	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewFieldsCmd(reporter *export.Reporter) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields reports can group, measure and filter by",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := domain.DefaultCatalog()
			if format == FormatJSON {
				return reporter.HandleJSON(adapters.MapDomainCatalogToApi(catalog))
			}
			return reporter.HandleFields(catalog)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatTable, "Output format: table or json")

	return cmd
}
