package pdfparser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/parsererror"
)

func newMockParser(pages ...string) *Parser {
	return NewParser(&MockTextExtractor{Pages: pages}, logging.NewNopLogger())
}

func TestParseDateDescriptionAmount(t *testing.T) {
	parser := newMockParser(
		"ACME BANK Statement March 2024\n" +
			"03/15/2024 STARBUCKS COFFEE -4.50\n" +
			"03/16/2024 WHOLE FOODS MARKET -82.17\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "STARBUCKS COFFEE", records[0].Description)
	assert.Equal(t, "-4.5", records[0].Amount.Decimal.String())
}

func TestParseDateAmountDescription(t *testing.T) {
	parser := newMockParser("03/15/2024 -4.50 STARBUCKS COFFEE\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "STARBUCKS COFFEE", records[0].Description)
	assert.Equal(t, "-4.5", records[0].Amount.Decimal.String())
}

func TestParseCurrencySymbolAndThousands(t *testing.T) {
	parser := newMockParser("03/15/2024 RENT PAYMENT -$1,850.00\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-1850", records[0].Amount.Decimal.String())
}

func TestParseMultiplePagesConcatenated(t *testing.T) {
	parser := newMockParser(
		"03/15/2024 PAGE ONE TX -1.00",
		"03/16/2024 PAGE TWO TX -2.00",
	)

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseDeduplicatesIdenticalTriples(t *testing.T) {
	parser := newMockParser(
		"03/15/2024 STARBUCKS COFFEE -4.50\n" +
			"03/15/2024 STARBUCKS COFFEE -4.50\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseDashedDates(t *testing.T) {
	parser := newMockParser("3-5-24 CORNER DELI -12.75\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestParseNoMatchesReturnsEmptyResultError(t *testing.T) {
	parser := newMockParser("This statement period had no activity.\nThank you for banking with us.\n")

	_, err := parser.Parse(nil, "statement.pdf")

	var emptyErr *parsererror.EmptyResultError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "statement.pdf", emptyErr.Filename)
}

func TestParseSkipsImpossibleDates(t *testing.T) {
	parser := newMockParser(
		"99/99/2024 GARBAGE LINE -1.00\n" +
			"03/15/2024 REAL LINE -2.00\n")

	records, err := parser.Parse(nil, "statement.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "REAL LINE", records[0].Description)
}

func TestParseExtractorError(t *testing.T) {
	parser := NewParser(&MockTextExtractor{Err: errors.New("corrupt xref")}, logging.NewNopLogger())

	_, err := parser.Parse(nil, "statement.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt xref")
}
