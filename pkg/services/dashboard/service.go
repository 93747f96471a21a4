// Package dashboard computes the fixed widgets shown above saved reports.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	TopSellersLimit = 10
	MonthlyWindow   = 12
)

// TrackedStages are the stages counted per creation month.
var TrackedStages = []domain.Stage{
	domain.StageNew,
	domain.StageInbound,
	domain.StageOutbound,
	domain.StageProposal,
}

// SellerChain resolves who sold an opportunity; the creator is the last resort.
var SellerChain = report.ResponsibleChain.With(report.CreatedByName)

type Service struct {
	now func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Build(ctx context.Context, records []domain.Opportunity) domain.Dashboard {
	dashboard := domain.Dashboard{
		ClosedWonLost: ClosedWonLostSummary(records, s.now()),
		TopSellers:    TopSellers(records, TopSellersLimit),
		MonthlyStages: MonthlyStages(records, MonthlyWindow),
	}

	zerolog.Ctx(ctx).Debug().
		Int("records", len(records)).
		Int("sellers", len(dashboard.TopSellers)).
		Int("months", len(dashboard.MonthlyStages)).
		Msg("dashboard built")

	return dashboard
}

// ClosedWonLostSummary counts closed deals in the month and year of now. A deal
// is dated by its close date, or by its creation date when it has none.
func ClosedWonLostSummary(records []domain.Opportunity, now time.Time) domain.ClosedWonLost {
	var summary domain.ClosedWonLost
	var wonMonth, wonYear, lostMonth, lostYear decimal.Decimal

	for i := range records {
		opp := &records[i]
		if opp.Stage != domain.StageClosedWon && opp.Stage != domain.StageClosedLost {
			continue
		}

		ref := opp.CreatedAt
		if opp.CloseDate != nil {
			ref = *opp.CloseDate
		}
		ref = ref.In(now.Location())
		if ref.Year() != now.Year() {
			continue
		}
		sameMonth := ref.Month() == now.Month()
		amount := report.AmountOf(opp)

		if opp.Stage == domain.StageClosedWon {
			summary.WonYear++
			wonYear = wonYear.Add(amount)
			if sameMonth {
				summary.WonMonth++
				wonMonth = wonMonth.Add(amount)
			}
			continue
		}

		summary.LostYear++
		lostYear = lostYear.Add(amount)
		if sameMonth {
			summary.LostMonth++
			lostMonth = lostMonth.Add(amount)
		}
	}

	summary.AmountWonMonth = wonMonth.InexactFloat64()
	summary.AmountWonYear = wonYear.InexactFloat64()
	summary.AmountLostMonth = lostMonth.InexactFloat64()
	summary.AmountLostYear = lostYear.InexactFloat64()
	return summary
}

type sellerTotals struct {
	seller string
	won    int
	total  int
	amount decimal.Decimal
}

// TopSellers ranks sellers with at least one won deal by won amount.
func TopSellers(records []domain.Opportunity, limit int) []domain.SellerRanking {
	index := make(map[string]int)
	var totals []sellerTotals

	for i := range records {
		opp := &records[i]
		seller := SellerChain.Resolve(opp)
		if seller == "" {
			seller = report.KeyUnassigned
		}

		pos, ok := index[seller]
		if !ok {
			pos = len(totals)
			index[seller] = pos
			totals = append(totals, sellerTotals{seller: seller, amount: decimal.Zero})
		}

		totals[pos].total++
		if opp.Stage == domain.StageClosedWon {
			totals[pos].won++
			totals[pos].amount = totals[pos].amount.Add(report.AmountOf(opp))
		}
	}

	ranking := make([]sellerTotals, 0, len(totals))
	for _, t := range totals {
		if t.seller != report.KeyUnassigned && t.won > 0 {
			ranking = append(ranking, t)
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].amount.GreaterThan(ranking[j].amount)
	})
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	result := make([]domain.SellerRanking, 0, len(ranking))
	for _, t := range ranking {
		result = append(result, domain.SellerRanking{
			Seller: t.seller,
			Won:    t.won,
			Total:  t.total,
			Amount: t.amount.InexactFloat64(),
		})
	}
	return result
}

// MonthlyStages counts opportunities of the tracked stages per creation month,
// keeping the latest months in chronological order.
func MonthlyStages(records []domain.Opportunity, months int) []domain.MonthlyStageCount {
	byMonth := make(map[string]*domain.MonthlyStageCount)
	tracked := make(map[domain.Stage]bool, len(TrackedStages))
	for _, stage := range TrackedStages {
		tracked[stage] = true
	}

	for i := range records {
		opp := &records[i]
		key := report.MonthKey(opp.CreatedAt)

		bucket, ok := byMonth[key]
		if !ok {
			bucket = &domain.MonthlyStageCount{Month: key, Counts: make(map[domain.Stage]int, len(TrackedStages))}
			for _, stage := range TrackedStages {
				bucket.Counts[stage] = 0
			}
			byMonth[key] = bucket
		}
		if tracked[opp.Stage] {
			bucket.Counts[opp.Stage]++
		}
	}

	buckets := make([]domain.MonthlyStageCount, 0, len(byMonth))
	for _, bucket := range byMonth {
		buckets = append(buckets, *bucket)
	}
	return report.LatestByMonth(buckets, func(m domain.MonthlyStageCount) string { return m.Month }, months)
}
