// Package report turns opportunity records and a report configuration into
// chart-ready series: filter, group, aggregate, format.
package report

import (
	"context"
	"fmt"
	"runtime"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Settings struct {
	Locale   string
	Currency string
}

func DefaultSettings() Settings {
	return Settings{Locale: DefaultLocale, Currency: DefaultCurrency}
}

// Evaluator runs the report pipeline. It holds no per-evaluation state and is
// safe for concurrent use.
type Evaluator struct {
	money *CurrencyFormatter
}

func NewEvaluator(settings Settings) (*Evaluator, error) {
	if settings.Locale == "" {
		settings.Locale = DefaultLocale
	}
	if settings.Currency == "" {
		settings.Currency = DefaultCurrency
	}

	money, err := NewCurrencyFormatter(settings.Locale, settings.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency formatter: %w", err)
	}
	return &Evaluator{money: money}, nil
}

func (e *Evaluator) Money() *CurrencyFormatter {
	return e.money
}

// Evaluate produces the series for one configuration. It never fails: malformed
// clauses match everything and unknown groupings collapse into one bucket.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	records []domain.Opportunity,
	cfg domain.ReportConfig,
) []domain.SeriesEntry {
	logger := zerolog.Ctx(ctx)

	filtered := Filter(records, cfg.Filters)
	groups := Aggregate(filtered, cfg.GroupBy)
	series := Format(groups, cfg.GroupBy, cfg.Metric, e.money)

	logger.Debug().
		Str("report_id", cfg.ID).
		Str("group_by", string(cfg.GroupBy)).
		Str("metric", string(cfg.Metric)).
		Int("records", len(records)).
		Int("filtered", len(filtered)).
		Int("points", len(series)).
		Msg("report evaluated")

	return series
}

// EvaluateAll evaluates every configuration against the same snapshot in
// parallel. Results keep the order of cfgs.
func (e *Evaluator) EvaluateAll(
	ctx context.Context,
	records []domain.Opportunity,
	cfgs []domain.ReportConfig,
) ([]domain.ReportResult, error) {
	results := make([]domain.ReportResult, len(cfgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = domain.ReportResult{
				Report: cfg,
				Series: e.Evaluate(gctx, records, cfg),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to evaluate reports: %w", err)
	}
	return results, nil
}
