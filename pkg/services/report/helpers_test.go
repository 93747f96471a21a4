package report

import (
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

func brl(units int64) *domain.Amount {
	return &domain.Amount{AmountMicros: units * 1_000_000, CurrencyCode: "BRL"}
}

func ids(records []domain.Opportunity) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// pipeline is a small mixed dataset used across tests
func pipeline() []domain.Opportunity {
	return []domain.Opportunity{
		{
			ID:          "opp-1",
			Name:        "Acme renewal",
			Stage:       domain.StageClosedWon,
			Source:      domain.SourceInbound,
			Amount:      brl(100),
			CloseDate:   tsPtr("2024-03-20T12:00:00Z"),
			CreatedAt:   ts("2024-03-10T09:00:00Z"),
			Responsible: &domain.Emails{PrimaryEmail: "ana@fass.legal"},
		},
		{
			ID:        "opp-2",
			Name:      "Globex pilot",
			Stage:     domain.StageClosedLost,
			Source:    domain.SourceOutbound,
			Amount:    brl(50),
			CreatedAt: ts("2024-03-12T09:00:00Z"),
			PointOfContact: &domain.Contact{
				ID:     "poc-1",
				Emails: &domain.Emails{PrimaryEmail: "bruno@globex.com"},
			},
		},
		{
			ID:        "opp-3",
			Name:      "Initech expansion",
			Stage:     domain.StageProposal,
			CreatedAt: ts("2024-05-02T15:30:00Z"),
			CreatedBy: &domain.Actor{Name: "Carla Souza"},
		},
		{
			ID:          "opp-4",
			Name:        "Umbrella audit",
			Stage:       domain.StageClosedWon,
			Source:      domain.SourceInbound,
			Amount:      brl(250),
			CloseDate:   tsPtr("2024-06-01T00:00:00Z"),
			CreatedAt:   ts("2024-04-28T10:00:00Z"),
			Responsible: &domain.Emails{PrimaryEmail: "ana@fass.legal"},
			PointOfContact: &domain.Contact{
				Emails: &domain.Emails{PrimaryEmail: "ignored@umbrella.com"},
			},
		},
	}
}
