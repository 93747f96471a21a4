package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 32,
		ValueWidth: 18,
	}
}

type Option func(*Reporter)

func WithTableConfig(config TableConfig) Option {
	return func(r *Reporter) {
		r.config = config
	}
}

// WithColor forces colored headings on or off regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		if enabled {
			r.heading.EnableColor()
		} else {
			r.heading.DisableColor()
		}
	}
}

type Reporter struct {
	writer  io.Writer
	config  TableConfig
	heading *color.Color
}

func NewReporter(writer io.Writer, opts ...Option) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	r := &Reporter{
		writer:  writer,
		config:  DefaultTableConfig(),
		heading: color.New(color.Bold, color.FgCyan),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const seriesTemplate = `{{title .Report.Name}}
Agrupar por: {{.Report.GroupBy}}  Métrica: {{.Report.Metric}}  Filtros: {{len .Report.Filters}}

{{separator}}
{{row "Rótulo" "Valor"}}
{{separator}}
{{range .Series}}{{row .Label (display .)}}
{{end}}{{separator}}
`

const dashboardTemplate = `{{title "Fechamentos"}}
{{separator}}
{{row "" "Mês" "Ano"}}
{{separator}}
{{row "Ganhos" (count .ClosedWonLost.WonMonth) (count .ClosedWonLost.WonYear)}}
{{row "Perdidos" (count .ClosedWonLost.LostMonth) (count .ClosedWonLost.LostYear)}}
{{row "Valor ganho" (money .ClosedWonLost.AmountWonMonth) (money .ClosedWonLost.AmountWonYear)}}
{{row "Valor perdido" (money .ClosedWonLost.AmountLostMonth) (money .ClosedWonLost.AmountLostYear)}}
{{separator}}

{{title "Top vendedores"}}
{{separator}}
{{row "Vendedor" "Ganhos" "Valor"}}
{{separator}}
{{range .TopSellers}}{{row .Seller (printf "%d/%d" .Won .Total) (money .Amount)}}
{{end}}{{separator}}

{{title "Oportunidades por mês"}}
{{separator}}
{{row "Mês" "Etapa" "Quantidade"}}
{{separator}}
{{range $m := .MonthlyStages}}{{range $stage := stages}}{{row $m.Month (stageLabel $stage) (count (index $m.Counts $stage))}}
{{end}}{{end}}{{separator}}
`

const fieldsTemplate = `{{title "Agrupamentos"}}
{{range .GroupBy}}  {{cell .ID}} {{.Label}}
{{end}}
{{title "Métricas"}}
{{range .Metrics}}  {{cell .ID}} {{.Label}}
{{end}}
{{title "Filtros"}}
{{range .Filters}}  {{cell .ID}} {{.Label}} ({{.Type}})
{{end}}`

// HandleSeries prints one evaluated report as a two-column table.
func (r *Reporter) HandleSeries(result domain.ReportResult) error {
	return r.execute("series", seriesTemplate, result, 2, nil)
}

// HandleDashboard prints the fixed dashboard widgets. money renders amounts
// and may be nil, in which case plain numbers are printed.
func (r *Reporter) HandleDashboard(dashboard domain.Dashboard, money *report.CurrencyFormatter, stages []domain.Stage) error {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			if money == nil {
				return formatNumber(v)
			}
			return money.Format(v)
		},
		"count":      strconv.Itoa,
		"stages":     func() []domain.Stage { return stages },
		"stageLabel": func(s domain.Stage) string { return report.Label(domain.GroupByStage, string(s)) },
	}
	return r.execute("dashboard", dashboardTemplate, dashboard, 3, funcs)
}

func (r *Reporter) HandleFields(catalog domain.FieldCatalog) error {
	return r.execute("fields", fieldsTemplate, catalog, 2, nil)
}

// HandleJSON writes v as indented JSON.
func (r *Reporter) HandleJSON(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (r *Reporter) execute(name, text string, data any, columns int, extra template.FuncMap) error {
	funcMap := template.FuncMap{
		"title": func(s string) string {
			return r.heading.Sprint(s)
		},
		"row": func(cells ...string) string {
			return r.formatRow(cells)
		},
		"separator": func() string {
			return r.separator(columns)
		},
		"cell": func(s string) string {
			return runewidth.FillRight(s, r.config.LabelWidth)
		},
		"display": displayValue,
	}
	for k, v := range extra {
		funcMap[k] = v
	}

	t, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, data)
}

// formatRow pads by display width so accented labels stay aligned. The first
// cell is left aligned and truncated; the rest are right aligned.
func (r *Reporter) formatRow(cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		if i == 0 {
			cell = runewidth.Truncate(cell, r.config.LabelWidth, "…")
			cell = runewidth.FillRight(cell, r.config.LabelWidth)
		} else {
			cell = runewidth.FillLeft(cell, r.config.ValueWidth)
		}
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	return b.String()
}

func (r *Reporter) separator(columns int) string {
	var b strings.Builder
	b.WriteString("+")
	for i := 0; i < columns; i++ {
		width := r.config.ValueWidth
		if i == 0 {
			width = r.config.LabelWidth
		}
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	return b.String()
}

func displayValue(entry domain.SeriesEntry) string {
	if entry.FormattedValue != "" {
		return entry.FormattedValue
	}
	return formatNumber(entry.Value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
