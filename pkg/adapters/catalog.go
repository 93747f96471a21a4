package adapters

import (
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
)

func MapDomainCatalogToApi(catalog domain.FieldCatalog) api.FieldCatalog {
	result := api.FieldCatalog{
		GroupBy:         mapFieldDefinitions(catalog.GroupBy),
		Metrics:         mapFieldDefinitions(catalog.Metrics),
		Filters:         mapFieldDefinitions(catalog.Filters),
		OperatorsByType: make(map[string][]api.Option, len(catalog.OperatorsByType)),
		ChartTypes:      make([]api.ChartTypeOption, 0, len(catalog.ChartTypes)),
		ColorSchemes:    make([]api.Option, 0, len(catalog.ColorSchemes)),
	}
	for fieldType, operators := range catalog.OperatorsByType {
		options := make([]api.Option, 0, len(operators))
		for _, op := range operators {
			options = append(options, api.Option{Value: string(op.Value), Label: op.Label})
		}
		result.OperatorsByType[string(fieldType)] = options
	}
	for _, chart := range catalog.ChartTypes {
		result.ChartTypes = append(result.ChartTypes, api.ChartTypeOption{
			ID:    string(chart.ID),
			Label: chart.Label,
			Icon:  chart.Icon,
		})
	}
	for _, scheme := range catalog.ColorSchemes {
		result.ColorSchemes = append(result.ColorSchemes, api.Option{Value: string(scheme.Value), Label: scheme.Label})
	}
	return result
}

func mapFieldDefinitions(fields []domain.FieldDefinition) []api.FieldDefinition {
	result := make([]api.FieldDefinition, 0, len(fields))
	for _, f := range fields {
		def := api.FieldDefinition{ID: f.ID, Label: f.Label, Type: string(f.Type)}
		for _, o := range f.Options {
			def.Options = append(def.Options, api.Option{Value: o.Value, Label: o.Label})
		}
		result = append(result, def)
	}
	return result
}
