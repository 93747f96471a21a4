package adapters

import (
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
)

func MapDomainDashboardToApi(d domain.Dashboard) api.Dashboard {
	result := api.Dashboard{
		ClosedWonLost: api.ClosedWonLost{
			WonMonth:        d.ClosedWonLost.WonMonth,
			WonYear:         d.ClosedWonLost.WonYear,
			LostMonth:       d.ClosedWonLost.LostMonth,
			LostYear:        d.ClosedWonLost.LostYear,
			AmountWonMonth:  d.ClosedWonLost.AmountWonMonth,
			AmountWonYear:   d.ClosedWonLost.AmountWonYear,
			AmountLostMonth: d.ClosedWonLost.AmountLostMonth,
			AmountLostYear:  d.ClosedWonLost.AmountLostYear,
		},
		TopSellers:    make([]api.SellerRanking, 0, len(d.TopSellers)),
		MonthlyStages: make([]api.MonthlyStageCount, 0, len(d.MonthlyStages)),
	}
	for _, s := range d.TopSellers {
		result.TopSellers = append(result.TopSellers, api.SellerRanking{
			Seller: s.Seller,
			Won:    s.Won,
			Total:  s.Total,
			Amount: s.Amount,
		})
	}
	for _, m := range d.MonthlyStages {
		counts := make(map[string]int, len(m.Counts))
		for stage, n := range m.Counts {
			counts[string(stage)] = n
		}
		result.MonthlyStages = append(result.MonthlyStages, api.MonthlyStageCount{Month: m.Month, Counts: counts})
	}
	return result
}
