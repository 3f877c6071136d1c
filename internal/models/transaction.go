// Package models provides the data structures shared across the parsing and
// classification pipeline.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the canonical transaction produced by the statement
// parser and consumed by the classifier and downstream consumers.
//
// Sign convention: negative amount = outflow. Amount uses NullDecimal because
// individual malformed amount cells in structured files are tolerated as null
// rather than failing the whole file.
type TransactionRecord struct {
	ID          string              `json:"id"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Category    string              `json:"category,omitempty"`
}

// NewTransactionRecord creates a record with a fresh ID and a valid amount.
func NewTransactionRecord(date time.Time, description string, amount decimal.Decimal) TransactionRecord {
	return TransactionRecord{
		ID:          uuid.New().String(),
		Date:        date,
		Description: strings.TrimSpace(description),
		Amount:      decimal.NewNullDecimal(amount),
	}
}

// NormalizedDescription returns the description lower-cased and trimmed, the
// form every categorization strategy matches against.
func (t TransactionRecord) NormalizedDescription() string {
	return strings.ToLower(strings.TrimSpace(t.Description))
}

// HasCategory reports whether classification has assigned a category.
func (t TransactionRecord) HasCategory() bool {
	return t.Category != ""
}

// HasAmount reports whether the amount cell parsed to a usable value.
func (t TransactionRecord) HasAmount() bool {
	return t.Amount.Valid
}

// AmountOrZero returns the amount, or zero when the cell was unparseable.
// Summary aggregation treats null amounts as zero.
func (t TransactionRecord) AmountOrZero() decimal.Decimal {
	if t.Amount.Valid {
		return t.Amount.Decimal
	}
	return decimal.Zero
}
