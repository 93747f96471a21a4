package domain

type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
)

type Option struct {
	Value string
	Label string
}

// FieldDefinition describes a logical field for UI enumeration and operator selection
type FieldDefinition struct {
	ID      string
	Label   string
	Type    FieldType
	Options []Option
}

type OperatorOption struct {
	Value FilterOperator
	Label string
}

type ChartTypeOption struct {
	ID    ChartType
	Label string
	Icon  string
}

type ColorSchemeOption struct {
	Value ColorScheme
	Label string
}

// FieldCatalog groups everything a report builder needs to enumerate
type FieldCatalog struct {
	GroupBy         []FieldDefinition
	Metrics         []FieldDefinition
	Filters         []FieldDefinition
	OperatorsByType map[FieldType][]OperatorOption
	ChartTypes      []ChartTypeOption
	ColorSchemes    []ColorSchemeOption
}

var StageOptions = []Option{
	{Value: string(StageNew), Label: "Novo"},
	{Value: string(StageInbound), Label: "Inbound"},
	{Value: string(StageOutbound), Label: "Outbound"},
	{Value: string(StageScreening), Label: "Triagem"},
	{Value: string(StageMeeting), Label: "Reunião"},
	{Value: string(StageProposal), Label: "Proposta"},
	{Value: string(StageCustomer), Label: "Cliente"},
	{Value: string(StageClosedWon), Label: "Fechado (Ganho)"},
	{Value: string(StageClosedLost), Label: "Fechado (Perdido)"},
}

var SourceOptions = []Option{
	{Value: string(SourceInbound), Label: "Inbound"},
	{Value: string(SourceOutbound), Label: "Outbound"},
}

// DefaultCatalog returns a fresh copy of the built-in field catalog.
func DefaultCatalog() FieldCatalog {
	return FieldCatalog{
		GroupBy: []FieldDefinition{
			{ID: string(GroupByStage), Label: "Estágio", Type: FieldTypeSelect, Options: StageOptions},
			{ID: string(GroupBySource), Label: "Origem (Source)", Type: FieldTypeSelect, Options: SourceOptions},
			{ID: string(GroupByResponsible), Label: "Responsável", Type: FieldTypeString},
			{ID: string(GroupByMonth), Label: "Mês de Criação", Type: FieldTypeDate},
			{ID: string(GroupByCloseMonth), Label: "Mês de Fechamento", Type: FieldTypeDate},
			{ID: string(GroupByYear), Label: "Ano", Type: FieldTypeDate},
			{ID: string(GroupByQuarter), Label: "Trimestre", Type: FieldTypeDate},
		},
		Metrics: []FieldDefinition{
			{ID: string(MetricCount), Label: "Quantidade", Type: FieldTypeNumber},
			{ID: string(MetricAmount), Label: "Valor (R$)", Type: FieldTypeNumber},
		},
		Filters: []FieldDefinition{
			{ID: "stage", Label: "Estágio", Type: FieldTypeMultiselect, Options: StageOptions},
			{ID: "source", Label: "Origem", Type: FieldTypeSelect, Options: SourceOptions},
			{ID: "responsavel", Label: "Responsável", Type: FieldTypeString},
			{ID: "createdAt", Label: "Data de Criação", Type: FieldTypeDate},
			{ID: "closeDate", Label: "Data de Fechamento", Type: FieldTypeDate},
			{ID: "amount", Label: "Valor", Type: FieldTypeNumber},
		},
		OperatorsByType: map[FieldType][]OperatorOption{
			FieldTypeString: {
				{Value: OperatorEquals, Label: "Igual a"},
				{Value: OperatorNotEquals, Label: "Diferente de"},
				{Value: OperatorContains, Label: "Contém"},
			},
			FieldTypeNumber: {
				{Value: OperatorEquals, Label: "Igual a"},
				{Value: OperatorGreaterThan, Label: "Maior que"},
				{Value: OperatorLessThan, Label: "Menor que"},
				{Value: OperatorBetween, Label: "Entre"},
			},
			FieldTypeDate: {
				{Value: OperatorEquals, Label: "Igual a"},
				{Value: OperatorGreaterThan, Label: "Depois de"},
				{Value: OperatorLessThan, Label: "Antes de"},
				{Value: OperatorBetween, Label: "Entre"},
			},
			FieldTypeSelect: {
				{Value: OperatorEquals, Label: "Igual a"},
				{Value: OperatorNotEquals, Label: "Diferente de"},
			},
			FieldTypeMultiselect: {
				{Value: OperatorIn, Label: "Um de"},
				{Value: OperatorNotEquals, Label: "Nenhum de"},
			},
		},
		ChartTypes: []ChartTypeOption{
			{ID: ChartTypeBar, Label: "Barras Verticais", Icon: "IconChartBar"},
			{ID: ChartTypeHorizontalBar, Label: "Barras Horizontais", Icon: "IconChartBarHorizontal"},
			{ID: ChartTypePie, Label: "Pizza", Icon: "IconChartPie"},
			{ID: ChartTypeLine, Label: "Linha", Icon: "IconChartLine"},
		},
		ColorSchemes: []ColorSchemeOption{
			{Value: ColorSchemeNivo, Label: "Nivo (Padrão)"},
			{Value: ColorSchemeCategory10, Label: "Category 10"},
			{Value: ColorSchemeSet1, Label: "Set 1 (Vibrante)"},
			{Value: ColorSchemeSet2, Label: "Set 2 (Suave)"},
			{Value: ColorSchemeSet3, Label: "Set 3 (Pastel)"},
			{Value: ColorSchemePastel1, Label: "Pastel 1"},
			{Value: ColorSchemePastel2, Label: "Pastel 2"},
			{Value: ColorSchemeAccent, Label: "Accent"},
			{Value: ColorSchemeDark2, Label: "Dark 2"},
			{Value: ColorSchemePaired, Label: "Paired"},
			{Value: ColorSchemeBlues, Label: "Azuis"},
			{Value: ColorSchemeGreens, Label: "Verdes"},
			{Value: ColorSchemeOranges, Label: "Laranjas"},
			{Value: ColorSchemePurples, Label: "Roxos"},
			{Value: ColorSchemeReds, Label: "Vermelhos"},
		},
	}
}
