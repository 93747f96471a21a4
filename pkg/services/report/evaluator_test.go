package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	evaluator, err := NewEvaluator(DefaultSettings())
	require.NoError(t, err)
	return evaluator
}

func TestNewEvaluator(t *testing.T) {
	t.Run("empty settings fall back to defaults", func(t *testing.T) {
		evaluator, err := NewEvaluator(Settings{})
		require.NoError(t, err)
		assert.Equal(t, "R$\u00a010", evaluator.Money().Format(10))
	})

	t.Run("invalid currency", func(t *testing.T) {
		_, err := NewEvaluator(Settings{Locale: "pt-BR", Currency: "??"})
		assert.ErrorContains(t, err, "failed to create currency formatter")
	})
}

func TestEvaluate_WonAmountBySource(t *testing.T) {
	evaluator := newTestEvaluator(t)
	cfg := domain.ReportConfig{
		ID:      "won-by-source",
		GroupBy: domain.GroupBySource,
		Metric:  domain.MetricAmount,
		Filters: []domain.ReportFilter{
			{ID: "f1", Field: "stage", Operator: domain.OperatorIn, Value: []any{"CLOSED_WON"}},
		},
	}

	series := evaluator.Evaluate(context.Background(), pipeline(), cfg)

	want := []domain.SeriesEntry{
		{ID: "Inbound", Label: "Inbound", Value: 350, FormattedValue: "R$\u00a0350"},
	}
	if diff := cmp.Diff(want, series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	evaluator := newTestEvaluator(t)
	records := pipeline()
	cfg := domain.ReportConfig{GroupBy: domain.GroupByResponsible, Metric: domain.MetricCount}

	first := evaluator.Evaluate(context.Background(), records, cfg)
	second := evaluator.Evaluate(context.Background(), records, cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, pipeline(), records)
}

func TestEvaluate_EmptyInput(t *testing.T) {
	evaluator := newTestEvaluator(t)

	series := evaluator.Evaluate(context.Background(), nil, domain.ReportConfig{GroupBy: domain.GroupByStage})

	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestEvaluateAll_KeepsOrder(t *testing.T) {
	evaluator := newTestEvaluator(t)
	records := pipeline()

	var cfgs []domain.ReportConfig
	groupings := []domain.GroupByField{
		domain.GroupByStage,
		domain.GroupBySource,
		domain.GroupByResponsible,
		domain.GroupByMonth,
		domain.GroupByCloseMonth,
	}
	for i := 0; i < 20; i++ {
		cfgs = append(cfgs, domain.ReportConfig{
			ID:      fmt.Sprintf("r-%02d", i),
			GroupBy: groupings[i%len(groupings)],
			Metric:  domain.MetricCount,
		})
	}

	results, err := evaluator.EvaluateAll(context.Background(), records, cfgs)
	require.NoError(t, err)
	require.Len(t, results, len(cfgs))

	for i, result := range results {
		assert.Equal(t, cfgs[i].ID, result.Report.ID)
		assert.Equal(t, evaluator.Evaluate(context.Background(), records, cfgs[i]), result.Series)
	}
}

func TestEvaluateAll_CancelledContext(t *testing.T) {
	evaluator := newTestEvaluator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evaluator.EvaluateAll(ctx, pipeline(), []domain.ReportConfig{{ID: "r-1"}})

	assert.ErrorIs(t, err, context.Canceled)
}
