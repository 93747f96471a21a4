package api

type ReportFilter struct {
	ID       string `json:"id"`
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type ReportConfig struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ChartType        string         `json:"chartType"`
	GroupBy          string         `json:"groupBy"`
	SecondaryGroupBy *string        `json:"secondaryGroupBy,omitempty"`
	Metric           string         `json:"metric"`
	Aggregation      string         `json:"aggregation"`
	Filters          []ReportFilter `json:"filters"`
	ColorScheme      string         `json:"colorScheme"`
	CreatedAt        string         `json:"createdAt,omitempty"`
	UpdatedAt        string         `json:"updatedAt,omitempty"`
}

type SeriesEntry struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue,omitempty"`
}

type ReportSeries struct {
	Report ReportConfig  `json:"report"`
	Series []SeriesEntry `json:"series"`
}
