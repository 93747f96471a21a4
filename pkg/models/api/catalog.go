package api

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldDefinition struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []Option `json:"options,omitempty"`
}

type ChartTypeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type FieldCatalog struct {
	GroupBy         []FieldDefinition   `json:"groupBy"`
	Metrics         []FieldDefinition   `json:"metrics"`
	Filters         []FieldDefinition   `json:"filters"`
	OperatorsByType map[string][]Option `json:"operatorsByType"`
	ChartTypes      []ChartTypeOption   `json:"chartTypes"`
	ColorSchemes    []Option            `json:"colorSchemes"`
}
