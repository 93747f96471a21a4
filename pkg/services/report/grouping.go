package report

import (
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

// Sentinel group keys. Every record lands in some group.
const (
	KeyUnassigned = "unassigned"
	KeyNoDate     = "no date"
	KeyOther      = "other"
)

// GroupKey derives the bucket an opportunity falls into for a grouping dimension.
// Temporal buckets use the timestamp's own offset.
func GroupKey(opp *domain.Opportunity, groupBy domain.GroupByField) string {
	switch groupBy {
	case domain.GroupByStage:
		return orDefault(string(opp.Stage), KeyUnassigned)
	case domain.GroupBySource:
		return orDefault(string(opp.Source), KeyUnassigned)
	case domain.GroupByResponsible:
		return orDefault(ResponsibleChain.Resolve(opp), KeyUnassigned)
	case domain.GroupByMonth:
		return MonthKey(opp.CreatedAt)
	case domain.GroupByCloseMonth:
		if opp.CloseDate == nil {
			return KeyNoDate
		}
		return MonthKey(*opp.CloseDate)
	case domain.GroupByYear:
		return fmt.Sprintf("%04d", opp.CreatedAt.Year())
	case domain.GroupByQuarter:
		t := opp.CreatedAt
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%04d Q%d", t.Year(), quarter)
	default:
		return KeyOther
	}
}

// MonthKey formats a timestamp as YYYY-MM.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// IsMonthly reports whether the grouping produces YYYY-MM buckets.
func IsMonthly(groupBy domain.GroupByField) bool {
	return groupBy == domain.GroupByMonth || groupBy == domain.GroupByCloseMonth
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
