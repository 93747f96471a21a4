package report

import (
	"strings"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

// Matches decides whether a resolved field value satisfies one filter clause.
// Malformed clauses and unknown operators match everything.
func Matches(field string, value any, op domain.FilterOperator, clauseValue any) bool {
	switch op {
	case domain.OperatorEquals:
		return strictEqual(value, clauseValue)
	case domain.OperatorNotEquals:
		return !strictEqual(value, clauseValue)
	case domain.OperatorContains:
		return strings.Contains(
			strings.ToLower(stringify(value)),
			strings.ToLower(stringify(clauseValue)),
		)
	case domain.OperatorGreaterThan:
		return compare(field, value, clauseValue) > 0
	case domain.OperatorLessThan:
		return compare(field, value, clauseValue) < 0
	case domain.OperatorIn:
		return in(value, clauseValue)
	case domain.OperatorBetween:
		return between(value, clauseValue)
	default:
		return true
	}
}

// compare returns -1, 0 or 1, and 0 whenever either side cannot be interpreted.
func compare(field string, value, clauseValue any) int {
	if Field(field).IsTemporal() {
		a, okA := parseTime(stringify(value))
		b, okB := parseTime(stringify(clauseValue))
		if !okA || !okB {
			return 0
		}
		return a.Compare(b)
	}

	a, b := toNumber(value), toNumber(clauseValue)
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func in(value, clauseValue any) bool {
	needle := stringify(value)
	if list, ok := asList(clauseValue); ok {
		for _, item := range list {
			if stringify(item) == needle {
				return true
			}
		}
		return false
	}

	// comma separated text form
	for _, item := range strings.Split(stringify(clauseValue), ",") {
		if item == needle {
			return true
		}
	}
	return false
}

func between(value, clauseValue any) bool {
	bounds, ok := asList(clauseValue)
	if !ok || len(bounds) != 2 {
		return true
	}
	v := toNumber(value)
	return v >= toNumber(bounds[0]) && v <= toNumber(bounds[1])
}
