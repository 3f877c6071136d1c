package models

import "github.com/shopspring/decimal"

// CategorySummary is the per-category aggregate recomputed fresh on every
// classification run. Never persisted independently of its transactions.
type CategorySummary struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// NewCategorySummary computes totals for one category's records. TotalAmount
// is rounded to two places; AverageAmount is zero when the count is zero.
func NewCategorySummary(amounts []decimal.Decimal) CategorySummary {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	total = total.Round(2)

	summary := CategorySummary{
		TotalAmount:      total,
		TransactionCount: len(amounts),
		AverageAmount:    decimal.Zero,
	}
	if len(amounts) > 0 {
		summary.AverageAmount = total.Div(decimal.NewFromInt(int64(len(amounts)))).Round(2)
	}
	return summary
}
