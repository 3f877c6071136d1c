package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionRecord(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	record := NewTransactionRecord(date, "  STARBUCKS #1234  ", decimal.NewFromFloat(-4.50))

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, date, record.Date)
	assert.Equal(t, "STARBUCKS #1234", record.Description)
	assert.True(t, record.HasAmount())
	assert.False(t, record.HasCategory())
}

func TestNormalizedDescription(t *testing.T) {
	record := TransactionRecord{Description: "  Whole Foods MARKET "}
	assert.Equal(t, "whole foods market", record.NormalizedDescription())
}

func TestAmountOrZero(t *testing.T) {
	valid := TransactionRecord{Amount: decimal.NewNullDecimal(decimal.NewFromInt(7))}
	assert.True(t, valid.AmountOrZero().Equal(decimal.NewFromInt(7)))

	null := TransactionRecord{}
	assert.False(t, null.HasAmount())
	assert.True(t, null.AmountOrZero().IsZero())
}

func TestDefaultRulesOrder(t *testing.T) {
	rules := DefaultRules()
	names := CategoryNames(rules)

	// Enumeration order is load-bearing: first match wins, so Entertainment
	// ("amazon prime") must precede Shopping ("amazon").
	require.Equal(t, []string{
		CategoryFood,
		CategoryEntertainment,
		CategoryTransport,
		CategoryShopping,
		CategoryUtilities,
		CategoryHousing,
		CategoryHealthcare,
		CategoryIncome,
	}, names)
}

func TestNewCategorySummary(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(-10.005),
		decimal.NewFromFloat(-20.00),
	}
	summary := NewCategorySummary(amounts)
	assert.Equal(t, "-30.01", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, "-15.01", summary.AverageAmount.StringFixed(2))
}

func TestNewCategorySummaryEmpty(t *testing.T) {
	summary := NewCategorySummary(nil)
	assert.True(t, summary.TotalAmount.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
	assert.True(t, summary.AverageAmount.IsZero())
}
