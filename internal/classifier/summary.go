package classifier

import (
	"github.com/shopspring/decimal"

	"finmate/statements/internal/dateutils"
	"finmate/statements/internal/models"
)

// Summarize aggregates classified records per category. Every category in the
// rule table appears in the result even with zero records; categories present
// only in the records (Uncategorized, AI suggestions, preexisting labels) are
// included as well. Records without a parsed amount count toward
// TransactionCount but contribute zero to the totals.
func Summarize(records []models.TransactionRecord, rules []models.CategoryRule) map[string]models.CategorySummary {
	amounts := make(map[string][]decimal.Decimal)
	for _, rule := range rules {
		amounts[rule.Name] = nil
	}
	for _, record := range records {
		name := record.Category
		if name == "" {
			name = models.CategoryUncategorized
		}
		amounts[name] = append(amounts[name], record.AmountOrZero())
	}

	summaries := make(map[string]models.CategorySummary, len(amounts))
	for name, values := range amounts {
		summaries[name] = models.NewCategorySummary(values)
	}
	return summaries
}

// MonthlyTotals sums record amounts per calendar month, keyed "YYYY-MM".
func MonthlyTotals(records []models.TransactionRecord) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, record := range records {
		key := dateutils.MonthKey(record.Date)
		totals[key] = totals[key].Add(record.AmountOrZero()).Round(2)
	}
	return totals
}
