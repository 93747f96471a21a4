package report

import "github.com/de-tools/report-atlas/pkg/models/domain"

// Filter keeps the opportunities satisfying every clause. With no clauses the
// input slice is returned as is.
func Filter(records []domain.Opportunity, clauses []domain.ReportFilter) []domain.Opportunity {
	if len(clauses) == 0 {
		return records
	}

	out := make([]domain.Opportunity, 0, len(records))
	for i := range records {
		if matchesAll(&records[i], clauses) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchesAll(opp *domain.Opportunity, clauses []domain.ReportFilter) bool {
	for _, clause := range clauses {
		value := Resolve(opp, clause.Field)
		if !Matches(clause.Field, value, clause.Operator, clause.Value) {
			return false
		}
	}
	return true
}
