package report

import (
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	records := pipeline()
	won, lost, proposal := &records[0], &records[1], &records[2]

	tests := []struct {
		name  string
		opp   *domain.Opportunity
		field string
		want  any
	}{
		{"stage", won, "stage", "CLOSED_WON"},
		{"source", won, "source", "INBOUND"},
		{"missing source", proposal, "source", ""},
		{"responsible email", won, "responsavel", "ana@fass.legal"},
		{"responsible alias", won, "responsible", "ana@fass.legal"},
		{"point of contact fallback", lost, "responsavel", "bruno@globex.com"},
		{"no identity", proposal, "responsavel", ""},
		{"created at", won, "createdAt", "2024-03-10T09:00:00Z"},
		{"close date", won, "closeDate", "2024-03-20T12:00:00Z"},
		{"missing close date", lost, "closeDate", ""},
		{"amount in units", won, "amount", 100.0},
		{"missing amount", proposal, "amount", 0.0},
		{"unknown field", won, "probability", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.opp, tt.field))
		})
	}
}

func TestResolve_FractionalMicros(t *testing.T) {
	opp := &domain.Opportunity{Amount: &domain.Amount{AmountMicros: 1_234_500_000, CurrencyCode: "BRL"}}
	assert.Equal(t, 1234.5, Resolve(opp, "amount"))
}

func TestIdentityChain(t *testing.T) {
	records := pipeline()

	t.Run("direct email wins over point of contact", func(t *testing.T) {
		assert.Equal(t, "ana@fass.legal", ResponsibleChain.Resolve(&records[3]))
	})

	t.Run("contact without emails is skipped", func(t *testing.T) {
		opp := &domain.Opportunity{PointOfContact: &domain.Contact{ID: "poc"}}
		assert.Equal(t, "", ResponsibleChain.Resolve(opp))
	})

	t.Run("extended chain falls back to creator", func(t *testing.T) {
		chain := ResponsibleChain.With(CreatedByName)
		assert.Equal(t, "Carla Souza", chain.Resolve(&records[2]))
		assert.Len(t, ResponsibleChain, 2, "With must not modify the receiver")
	})
}
