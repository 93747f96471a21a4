package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
)

func MapApiReportConfigToDomain(cfg api.ReportConfig) (domain.ReportConfig, error) {
	result := domain.ReportConfig{
		ID:          cfg.ID,
		Name:        cfg.Name,
		ChartType:   domain.ChartType(cfg.ChartType),
		GroupBy:     domain.GroupByField(cfg.GroupBy),
		Metric:      domain.MetricField(cfg.Metric),
		Aggregation: domain.AggregationType(cfg.Aggregation),
		Filters:     make([]domain.ReportFilter, 0, len(cfg.Filters)),
		ColorScheme: domain.ColorScheme(cfg.ColorScheme),
	}
	if cfg.SecondaryGroupBy != nil {
		secondary := domain.GroupByField(*cfg.SecondaryGroupBy)
		result.SecondaryGroupBy = &secondary
	}
	for _, f := range cfg.Filters {
		result.Filters = append(result.Filters, domain.ReportFilter{
			ID:       f.ID,
			Field:    f.Field,
			Operator: domain.FilterOperator(f.Operator),
			Value:    f.Value,
		})
	}

	var err error
	if cfg.CreatedAt != "" {
		if result.CreatedAt, err = ParseTimestamp(cfg.CreatedAt); err != nil {
			return domain.ReportConfig{}, fmt.Errorf("report %s: createdAt: %w", cfg.ID, err)
		}
	}
	if cfg.UpdatedAt != "" {
		if result.UpdatedAt, err = ParseTimestamp(cfg.UpdatedAt); err != nil {
			return domain.ReportConfig{}, fmt.Errorf("report %s: updatedAt: %w", cfg.ID, err)
		}
	}
	return result, nil
}

func MapDomainReportConfigToApi(cfg domain.ReportConfig) api.ReportConfig {
	result := api.ReportConfig{
		ID:          cfg.ID,
		Name:        cfg.Name,
		ChartType:   string(cfg.ChartType),
		GroupBy:     string(cfg.GroupBy),
		Metric:      string(cfg.Metric),
		Aggregation: string(cfg.Aggregation),
		Filters:     make([]api.ReportFilter, 0, len(cfg.Filters)),
		ColorScheme: string(cfg.ColorScheme),
	}
	if cfg.SecondaryGroupBy != nil {
		secondary := string(*cfg.SecondaryGroupBy)
		result.SecondaryGroupBy = &secondary
	}
	for _, f := range cfg.Filters {
		result.Filters = append(result.Filters, api.ReportFilter{
			ID:       f.ID,
			Field:    f.Field,
			Operator: string(f.Operator),
			Value:    f.Value,
		})
	}
	if !cfg.CreatedAt.IsZero() {
		result.CreatedAt = cfg.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if !cfg.UpdatedAt.IsZero() {
		result.UpdatedAt = cfg.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return result
}

func MapDomainSeriesToApi(series []domain.SeriesEntry) []api.SeriesEntry {
	result := make([]api.SeriesEntry, 0, len(series))
	for _, entry := range series {
		result = append(result, api.SeriesEntry{
			ID:             entry.ID,
			Label:          entry.Label,
			Value:          entry.Value,
			FormattedValue: entry.FormattedValue,
		})
	}
	return result
}

func MapDomainReportResultToApi(result domain.ReportResult) api.ReportSeries {
	return api.ReportSeries{
		Report: MapDomainReportConfigToApi(result.Report),
		Series: MapDomainSeriesToApi(result.Series),
	}
}
