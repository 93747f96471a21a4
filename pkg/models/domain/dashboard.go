package domain

// ClosedWonLost summarizes closed deals for the current month and year
type ClosedWonLost struct {
	WonMonth        int
	WonYear         int
	LostMonth       int
	LostYear        int
	AmountWonMonth  float64
	AmountWonYear   float64
	AmountLostMonth float64
	AmountLostYear  float64
}

type SellerRanking struct {
	Seller string
	Won    int
	Total  int
	Amount float64
}

// MonthlyStageCount holds per-stage opportunity counts for one creation month (YYYY-MM)
type MonthlyStageCount struct {
	Month  string
	Counts map[Stage]int
}

type Dashboard struct {
	ClosedWonLost ClosedWonLost
	TopSellers    []SellerRanking
	MonthlyStages []MonthlyStageCount
}
