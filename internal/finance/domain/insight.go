package domain

import "github.com/shopspring/decimal"

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

func IsValidSpendingTrend(trend string) bool {
	return trend == TrendIncreasing || trend == TrendDecreasing || trend == TrendStable
}

// Insight is the user-facing result of the insights endpoint. Summary, Tips
// and SpendingTrend come from the text-generation service (or the no-data
// fallback); CategoryBreakdown is always computed locally.
type Insight struct {
	Summary           string                     `json:"summary"`
	Tips              []string                   `json:"tips"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"`
	SpendingTrend     string                     `json:"spendingTrend"`
}
