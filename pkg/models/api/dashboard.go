package api

type ClosedWonLost struct {
	WonMonth        int     `json:"closedWonMonth"`
	WonYear         int     `json:"closedWonYear"`
	LostMonth       int     `json:"closedLostMonth"`
	LostYear        int     `json:"closedLostYear"`
	AmountWonMonth  float64 `json:"amountWonMonth"`
	AmountWonYear   float64 `json:"amountWonYear"`
	AmountLostMonth float64 `json:"amountLostMonth"`
	AmountLostYear  float64 `json:"amountLostYear"`
}

type SellerRanking struct {
	Seller string  `json:"seller"`
	Won    int     `json:"won"`
	Total  int     `json:"total"`
	Amount float64 `json:"amount"`
}

type MonthlyStageCount struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

type Dashboard struct {
	ClosedWonLost ClosedWonLost       `json:"closedWonLost"`
	TopSellers    []SellerRanking     `json:"topSellers"`
	MonthlyStages []MonthlyStageCount `json:"monthlyStages"`
}
