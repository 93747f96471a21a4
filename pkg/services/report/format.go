package report

import (
	"sort"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

// MonthWindow is the number of most recent month buckets kept for monthly groupings.
const MonthWindow = 12

var (
	stageLabels  = optionLabels(domain.StageOptions)
	sourceLabels = optionLabels(domain.SourceOptions)
)

// Format turns groups into series entries. Monthly groupings are ordered
// chronologically and cut to the latest MonthWindow months; every other grouping
// is ordered by value, descending, keeping encounter order between equal values.
// money may be nil, in which case no display text is produced.
func Format(
	groups []Group,
	groupBy domain.GroupByField,
	metric domain.MetricField,
	money *CurrencyFormatter,
) []domain.SeriesEntry {
	if len(groups) == 0 {
		return []domain.SeriesEntry{}
	}

	if IsMonthly(groupBy) {
		groups = latestMonthGroups(groups)
	}

	entries := make([]domain.SeriesEntry, 0, len(groups))
	for _, g := range groups {
		label := Label(groupBy, g.Key)
		entry := domain.SeriesEntry{
			ID:    label,
			Label: label,
			Value: metricValue(g, metric),
		}
		if metric == domain.MetricAmount && money != nil {
			entry.FormattedValue = money.Format(entry.Value)
		}
		entries = append(entries, entry)
	}

	if !IsMonthly(groupBy) {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Value > entries[j].Value
		})
	}
	return entries
}

// Label maps a raw group key to its display label.
func Label(groupBy domain.GroupByField, key string) string {
	var labels map[string]string
	switch groupBy {
	case domain.GroupByStage:
		labels = stageLabels
	case domain.GroupBySource:
		labels = sourceLabels
	default:
		return key
	}
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

func metricValue(g Group, metric domain.MetricField) float64 {
	if metric == domain.MetricAmount {
		return g.Amount.InexactFloat64()
	}
	return float64(g.Count)
}

// latestMonthGroups orders dated groups chronologically and keeps the most
// recent MonthWindow of them; the undated bucket, if any, goes last.
func latestMonthGroups(groups []Group) []Group {
	dated := make([]Group, 0, len(groups))
	var undated []Group
	for _, g := range groups {
		if g.Key == KeyNoDate {
			undated = append(undated, g)
			continue
		}
		dated = append(dated, g)
	}

	dated = LatestByMonth(dated, func(g Group) string { return g.Key }, MonthWindow)
	return append(dated, undated...)
}

// LatestByMonth sorts items by their YYYY-MM key and returns the last n.
func LatestByMonth[T any](items []T, month func(T) string, n int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return month(sorted[i]) < month(sorted[j])
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func optionLabels(options []domain.Option) map[string]string {
	labels := make(map[string]string, len(options))
	for _, o := range options {
		labels[o.Value] = o.Label
	}
	return labels
}
