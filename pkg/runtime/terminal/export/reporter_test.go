package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFixture(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	reporter := NewReporter(&buf,
		WithColor(false),
		WithTableConfig(TableConfig{LabelWidth: 10, ValueWidth: 8}),
	)
	return reporter, &buf
}

func TestReporter_HandleSeries(t *testing.T) {
	reporter, buf := setupFixture(t)

	err := reporter.HandleSeries(domain.ReportResult{
		Report: domain.ReportConfig{
			Name:    "Por etapa",
			GroupBy: domain.GroupByStage,
			Metric:  domain.MetricCount,
			Filters: []domain.ReportFilter{},
		},
		Series: []domain.SeriesEntry{
			{ID: "Proposta", Label: "Proposta", Value: 2},
			{ID: "Fechado (Ganho)", Label: "Fechado (Ganho)", Value: 1},
		},
	})
	require.NoError(t, err)

	expected := `Por etapa
Agrupar por: stage  Métrica: count  Filtros: 0

+------------+----------+
| Rótulo     |    Valor |
+------------+----------+
| Proposta   |        2 |
| Fechado (… |        1 |
+------------+----------+
`
	assert.Equal(t, expected, buf.String())
}

func TestReporter_HandleSeries_FormattedValue(t *testing.T) {
	reporter, buf := setupFixture(t)

	err := reporter.HandleSeries(domain.ReportResult{
		Report: domain.ReportConfig{Name: "Valor", GroupBy: domain.GroupBySource, Metric: domain.MetricAmount},
		Series: []domain.SeriesEntry{
			{ID: "Inbound", Label: "Inbound", Value: 1234, FormattedValue: "R$\u00a01.234"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "| Inbound    | R$\u00a01.234 |")
}

func TestReporter_HandleDashboard(t *testing.T) {
	reporter, buf := setupFixture(t)
	money, err := report.NewCurrencyFormatter(report.DefaultLocale, report.DefaultCurrency)
	require.NoError(t, err)

	err = reporter.HandleDashboard(domain.Dashboard{
		ClosedWonLost: domain.ClosedWonLost{WonMonth: 1, WonYear: 3, AmountWonYear: 1500},
		TopSellers: []domain.SellerRanking{
			{Seller: "ana", Won: 2, Total: 3, Amount: 350},
		},
		MonthlyStages: []domain.MonthlyStageCount{
			{Month: "2024-05", Counts: map[domain.Stage]int{domain.StageNew: 4}},
		},
	}, money, []domain.Stage{domain.StageNew, domain.StageProposal})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "| Ganhos     |        1 |        3 |")
	assert.Contains(t, out, "| Valor gan… |     R$\u00a00 | R$\u00a01.500 |")
	assert.Contains(t, out, "| ana        |      2/3 |   R$\u00a0350 |")
	assert.Contains(t, out, "| 2024-05    |     Novo |        4 |")
	assert.Contains(t, out, "| 2024-05    | Proposta |        0 |")
}

func TestReporter_HandleDashboard_WithoutMoney(t *testing.T) {
	reporter, buf := setupFixture(t)

	err := reporter.HandleDashboard(domain.Dashboard{
		TopSellers: []domain.SellerRanking{{Seller: "ana", Won: 1, Total: 1, Amount: 99.5}},
	}, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "| ana        |      1/1 |     99.5 |")
}

func TestReporter_HandleFields(t *testing.T) {
	reporter, buf := setupFixture(t)

	require.NoError(t, reporter.HandleFields(domain.DefaultCatalog()))

	out := buf.String()
	assert.Contains(t, out, "Agrupamentos\n")
	assert.Contains(t, out, "  stage      Estágio")
	assert.Contains(t, out, "  amount     Valor")
	assert.Contains(t, out, "(select)")
}

func TestReporter_HandleJSON(t *testing.T) {
	reporter, buf := setupFixture(t)

	require.NoError(t, reporter.HandleJSON(map[string]int{"total": 3}))
	assert.Equal(t, "{\n  \"total\": 3\n}\n", buf.String())
}
