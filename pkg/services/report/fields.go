package report

import (
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Field is a logical field name understood by the resolver.
type Field string

const (
	FieldStage            Field = "stage"
	FieldSource           Field = "source"
	FieldResponsible      Field = "responsavel"
	FieldResponsibleAlias Field = "responsible"
	FieldCreatedAt        Field = "createdAt"
	FieldCloseDate        Field = "closeDate"
	FieldAmount           Field = "amount"
)

// IsTemporal reports whether comparisons on the field are date comparisons.
func (f Field) IsTemporal() bool {
	return f == FieldCreatedAt || f == FieldCloseDate
}

type resolverFunc func(opp *domain.Opportunity) any

var resolvers = map[Field]resolverFunc{
	FieldStage: func(opp *domain.Opportunity) any {
		return string(opp.Stage)
	},
	FieldSource: func(opp *domain.Opportunity) any {
		return string(opp.Source)
	},
	FieldResponsible: func(opp *domain.Opportunity) any {
		return ResponsibleChain.Resolve(opp)
	},
	FieldResponsibleAlias: func(opp *domain.Opportunity) any {
		return ResponsibleChain.Resolve(opp)
	},
	FieldCreatedAt: func(opp *domain.Opportunity) any {
		return formatTimestamp(opp.CreatedAt)
	},
	FieldCloseDate: func(opp *domain.Opportunity) any {
		if opp.CloseDate == nil {
			return ""
		}
		return formatTimestamp(*opp.CloseDate)
	},
	FieldAmount: func(opp *domain.Opportunity) any {
		return AmountOf(opp).InexactFloat64()
	},
}

// Resolve returns the value of a logical field for an opportunity, or nil when
// the field is unknown. Missing optional data resolves to "" or 0.
func Resolve(opp *domain.Opportunity, field string) any {
	resolve, ok := resolvers[Field(field)]
	if !ok {
		return nil
	}
	return resolve(opp)
}

// AmountOf converts the opportunity amount from micros to currency units.
func AmountOf(opp *domain.Opportunity) decimal.Decimal {
	if opp.Amount == nil {
		return decimal.Zero
	}
	return decimal.New(opp.Amount.AmountMicros, -6)
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// IdentityAccessor extracts one candidate identity from an opportunity.
type IdentityAccessor func(opp *domain.Opportunity) string

// IdentityChain is an ordered list of identity sources; the first non-empty one wins.
type IdentityChain []IdentityAccessor

func (c IdentityChain) Resolve(opp *domain.Opportunity) string {
	for _, accessor := range c {
		if v := accessor(opp); v != "" {
			return v
		}
	}
	return ""
}

// With returns a new chain with extra accessors appended.
func (c IdentityChain) With(accessors ...IdentityAccessor) IdentityChain {
	out := make(IdentityChain, 0, len(c)+len(accessors))
	out = append(out, c...)
	return append(out, accessors...)
}

func ResponsibleEmail(opp *domain.Opportunity) string {
	if opp.Responsible == nil {
		return ""
	}
	return opp.Responsible.PrimaryEmail
}

func PointOfContactEmail(opp *domain.Opportunity) string {
	if opp.PointOfContact == nil || opp.PointOfContact.Emails == nil {
		return ""
	}
	return opp.PointOfContact.Emails.PrimaryEmail
}

func CreatedByName(opp *domain.Opportunity) string {
	if opp.CreatedBy == nil {
		return ""
	}
	return opp.CreatedBy.Name
}

// ResponsibleChain resolves who is responsible for an opportunity.
var ResponsibleChain = IdentityChain{ResponsibleEmail, PointOfContactEmail}
