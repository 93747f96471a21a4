package domain

import "time"

type ChartType string

const (
	ChartTypeBar           ChartType = "bar"
	ChartTypeHorizontalBar ChartType = "horizontalBar"
	ChartTypePie           ChartType = "pie"
	ChartTypeLine          ChartType = "line"
)

type AggregationType string

const (
	AggregationCount   AggregationType = "count"
	AggregationSum     AggregationType = "sum"
	AggregationAverage AggregationType = "average"
)

type GroupByField string

const (
	GroupByStage       GroupByField = "stage"
	GroupBySource      GroupByField = "source"
	GroupByResponsible GroupByField = "responsavel"
	GroupByMonth       GroupByField = "month"
	GroupByYear        GroupByField = "year"
	GroupByQuarter     GroupByField = "quarter"
	GroupByCloseMonth  GroupByField = "closeMonth"
)

type MetricField string

const (
	MetricCount  MetricField = "count"
	MetricAmount MetricField = "amount"
)

type FilterOperator string

const (
	OperatorEquals      FilterOperator = "equals"
	OperatorNotEquals   FilterOperator = "notEquals"
	OperatorContains    FilterOperator = "contains"
	OperatorGreaterThan FilterOperator = "greaterThan"
	OperatorLessThan    FilterOperator = "lessThan"
	OperatorBetween     FilterOperator = "between"
	OperatorIn          FilterOperator = "in"
)

type ColorScheme string

const (
	ColorSchemeNivo       ColorScheme = "nivo"
	ColorSchemeCategory10 ColorScheme = "category10"
	ColorSchemeAccent     ColorScheme = "accent"
	ColorSchemeDark2      ColorScheme = "dark2"
	ColorSchemePaired     ColorScheme = "paired"
	ColorSchemePastel1    ColorScheme = "pastel1"
	ColorSchemePastel2    ColorScheme = "pastel2"
	ColorSchemeSet1       ColorScheme = "set1"
	ColorSchemeSet2       ColorScheme = "set2"
	ColorSchemeSet3       ColorScheme = "set3"
	ColorSchemeBlues      ColorScheme = "blues"
	ColorSchemeGreens     ColorScheme = "greens"
	ColorSchemeOranges    ColorScheme = "oranges"
	ColorSchemePurples    ColorScheme = "purples"
	ColorSchemeReds       ColorScheme = "reds"
)

// ReportFilter is a single filter clause. Value holds a scalar (string, number),
// a list or a 2-tuple, depending on Operator.
type ReportFilter struct {
	ID       string
	Field    string
	Operator FilterOperator
	Value    any
}

// ReportConfig is a user-authored report definition
type ReportConfig struct {
	ID               string
	Name             string
	ChartType        ChartType
	GroupBy          GroupByField
	SecondaryGroupBy *GroupByField
	Metric           MetricField
	Aggregation      AggregationType
	Filters          []ReportFilter
	ColorScheme      ColorScheme
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WithDefaults fills unset fields the same way the report builder does on save.
func (c ReportConfig) WithDefaults() ReportConfig {
	if c.Name == "" {
		c.Name = "Sem nome"
	}
	if c.ChartType == "" {
		c.ChartType = ChartTypeBar
	}
	if c.GroupBy == "" {
		c.GroupBy = GroupByStage
	}
	if c.Metric == "" {
		c.Metric = MetricCount
	}
	if c.Aggregation == "" {
		c.Aggregation = AggregationCount
	}
	if c.ColorScheme == "" {
		c.ColorScheme = ColorSchemeNivo
	}
	if c.Filters == nil {
		c.Filters = []ReportFilter{}
	}
	return c
}

// SeriesEntry is one labeled point of a report series
type SeriesEntry struct {
	ID             string
	Label          string
	Value          float64
	FormattedValue string // set for monetary metrics
}

// ReportResult pairs a report configuration with its evaluated series
type ReportResult struct {
	Report ReportConfig
	Series []SeriesEntry
}
