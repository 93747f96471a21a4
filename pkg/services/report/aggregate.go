package report

import (
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Group accumulates the opportunities sharing a group key.
type Group struct {
	Key    string
	Count  int
	Amount decimal.Decimal
}

// Aggregate folds records into groups in first-encounter order. Count and
// amount are both accumulated regardless of the metric being reported.
func Aggregate(records []domain.Opportunity, groupBy domain.GroupByField) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for i := range records {
		opp := &records[i]
		key := GroupKey(opp, groupBy)

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key, Amount: decimal.Zero})
		}

		groups[pos].Count++
		groups[pos].Amount = groups[pos].Amount.Add(AmountOf(opp))
	}

	return groups
}
