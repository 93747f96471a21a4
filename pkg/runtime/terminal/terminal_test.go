package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsFile = `[
	// exported from the CRM
	{"id": "opp-1", "name": "Acme", "stage": "CLOSED_WON", "source": "INBOUND",
	 "amount": {"amountMicros": 100000000, "currencyCode": "BRL"},
	 "closeDate": "2024-06-03T10:00:00Z", "createdAt": "2024-05-10T09:00:00Z",
	 "responsavel": {"primaryEmail": "ana@fass.legal"}},
	{"id": "opp-2", "name": "Globex", "stage": "CLOSED_LOST", "source": "OUTBOUND",
	 "amount": {"amountMicros": 50000000, "currencyCode": "BRL"},
	 "createdAt": "2024-05-12T09:00:00Z"},
	{"id": "opp-3", "name": "Initech", "stage": "CLOSED_WON", "source": "INBOUND",
	 "amount": {"amountMicros": 250000000, "currencyCode": "BRL"},
	 "createdAt": "2024-06-01T09:00:00Z",
	 "responsavel": {"emails": {"primaryEmail": "ana@fass.legal"}}},
]`

const reportConfig = `{
	"name": "Ganhos por origem",
	"groupBy": "source",
	"metric": "amount",
	"filters": [
		{"id": "f1", "field": "stage", "operator": "equals", "value": "CLOSED_WON"},
	],
}`

type fixture struct {
	dir    string
	out    *bytes.Buffer
	config string
	rows   string
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	f := &fixture{
		dir:    dir,
		out:    &bytes.Buffer{},
		config: filepath.Join(dir, "report.json"),
		rows:   filepath.Join(dir, "records.json"),
	}
	require.NoError(t, os.WriteFile(f.config, []byte(reportConfig), 0o600))
	require.NoError(t, os.WriteFile(f.rows, []byte(recordsFile), 0o600))

	return f
}

// run executes args on a fresh CLI so flag values never leak between runs.
func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	f.out.Reset()

	now := func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	cli := NewCLI(Options{
		Output:    f.out,
		Dashboard: dashboard.NewService(dashboard.WithClock(now)),
		Reporter:  []export.Option{export.WithColor(false)},
	})
	cli.rootCmd.SetArgs(args)
	return cli.Execute(context.Background())
}

func TestCLI_Evaluate(t *testing.T) {
	f := setupFixture(t)

	t.Run("table", func(t *testing.T) {
		require.NoError(t, f.run(t, "evaluate", "--config", f.config, "--records", f.rows))

		out := f.out.String()
		assert.Contains(t, out, "Ganhos por origem\n")
		assert.Contains(t, out, "Filtros: 1")
		assert.Contains(t, out, "Inbound")
		assert.Contains(t, out, "R$\u00a0350")
		assert.NotContains(t, out, "Outbound")
	})

	t.Run("json", func(t *testing.T) {
		require.NoError(t, f.run(t, "evaluate", "--config", f.config, "--records", f.rows, "--format", "json"))

		var result api.ReportSeries
		require.NoError(t, json.Unmarshal(f.out.Bytes(), &result))
		assert.Equal(t, "bar", result.Report.ChartType)
		assert.Equal(t, []api.SeriesEntry{
			{ID: "Inbound", Label: "Inbound", Value: 350, FormattedValue: "R$\u00a0350"},
		}, result.Series)
	})

	t.Run("currency", func(t *testing.T) {
		require.NoError(t, f.run(t, "evaluate", "--config", f.config, "--records", f.rows,
			"--format", "json", "--locale", "en-US", "--currency", "USD"))

		var result api.ReportSeries
		require.NoError(t, json.Unmarshal(f.out.Bytes(), &result))
		require.Len(t, result.Series, 1)
		assert.True(t, strings.HasSuffix(result.Series[0].FormattedValue, "\u00a0350"))
		assert.NotContains(t, result.Series[0].FormattedValue, "R$")
	})
}

func TestCLI_Evaluate_Errors(t *testing.T) {
	f := setupFixture(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing source", args: []string{"evaluate", "--config", f.config}},
		{name: "both sources", args: []string{"evaluate", "--config", f.config, "--records", f.rows, "--profile", "x"}},
		{name: "missing config", args: []string{"evaluate", "--records", f.rows}},
		{name: "unknown format", args: []string{"evaluate", "--config", f.config, "--records", f.rows, "--format", "xml"}},
		{name: "unreadable config", args: []string{"evaluate", "--config", filepath.Join(f.dir, "nope.json"), "--records", f.rows}},
		{name: "invalid currency", args: []string{"evaluate", "--config", f.config, "--records", f.rows, "--currency", "XX"}},
		{name: "unknown profile", args: []string{"evaluate", "--config", f.config, "--profile", "missing", "--profiles", filepath.Join(f.dir, "none.ini")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, f.run(t, tc.args...))
		})
	}
}

func TestCLI_Fields(t *testing.T) {
	f := setupFixture(t)

	require.NoError(t, f.run(t, "fields", "--format", "json"))

	var catalog api.FieldCatalog
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &catalog))
	assert.Len(t, catalog.GroupBy, 7)
	assert.Len(t, catalog.ChartTypes, 4)

	require.NoError(t, f.run(t, "fields"))
	assert.Contains(t, f.out.String(), "Métricas")
}

func TestCLI_ImportThenProfile(t *testing.T) {
	f := setupFixture(t)
	dbPath := filepath.Join(f.dir, "pipeline.db")
	profiles := filepath.Join(f.dir, "reports.ini")
	require.NoError(t, os.WriteFile(profiles, []byte(fmt.Sprintf("[pipeline]\npath = %s\nlimit = 100\n", dbPath)), 0o600))

	require.NoError(t, f.run(t, "import", "--records", f.rows, "--db", dbPath))
	assert.Equal(t, fmt.Sprintf("Imported 3 opportunities into %s\n", dbPath), f.out.String())

	t.Run("evaluate", func(t *testing.T) {
		require.NoError(t, f.run(t, "evaluate", "--config", f.config,
			"--profile", "pipeline", "--profiles", profiles, "--format", "json"))

		var result api.ReportSeries
		require.NoError(t, json.Unmarshal(f.out.Bytes(), &result))
		assert.Equal(t, []api.SeriesEntry{
			{ID: "Inbound", Label: "Inbound", Value: 350, FormattedValue: "R$\u00a0350"},
		}, result.Series)
	})

	t.Run("dashboard", func(t *testing.T) {
		require.NoError(t, f.run(t, "dashboard", "--profile", "pipeline", "--profiles", profiles, "--format", "json"))

		var result api.Dashboard
		require.NoError(t, json.Unmarshal(f.out.Bytes(), &result))
		assert.Equal(t, 2, result.ClosedWonLost.WonYear)
		assert.Equal(t, 1, result.ClosedWonLost.LostYear)
		assert.Equal(t, []api.SellerRanking{
			{Seller: "ana@fass.legal", Won: 2, Total: 2, Amount: 350},
		}, result.TopSellers)
	})

	t.Run("dashboard table", func(t *testing.T) {
		require.NoError(t, f.run(t, "dashboard", "--profile", "pipeline", "--profiles", profiles))
		assert.Contains(t, f.out.String(), "Top vendedores")
	})
}

func TestCLI_Import_MissingRecords(t *testing.T) {
	f := setupFixture(t)

	err := f.run(t, "import", "--records", filepath.Join(f.dir, "missing.json"), "--db", filepath.Join(f.dir, "x.db"))
	assert.Error(t, err)
}
