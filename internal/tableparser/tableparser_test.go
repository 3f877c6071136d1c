package tableparser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/parsererror"
)

func newTestParser() *Parser {
	return NewParser(nil, logging.NewNopLogger())
}

func TestParseCSVBasic(t *testing.T) {
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,STARBUCKS COFFEE,-4.50\n" +
		"03/16/2024,PAYCHECK DEPOSIT,2500.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "STARBUCKS COFFEE", records[0].Description)
	assert.Equal(t, "-4.5", records[0].Amount.Decimal.String())
	assert.NotEmpty(t, records[0].ID)
	assert.Empty(t, records[0].Category)
}

func TestParseCSVAliasHeaders(t *testing.T) {
	// "Transaction Date, Memo, Debit" must resolve to date/description/amount.
	csvData := []byte("Transaction Date,Memo,Debit\n" +
		"2024-03-15,GROCERY RUN,52.10\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "GROCERY RUN", records[0].Description)
	assert.Equal(t, "52.1", records[0].Amount.Decimal.String())
}

func TestParseCSVMixedCaseHeaders(t *testing.T) {
	csvData := []byte("  POSTING DATE ,Transaction Description,TRANSACTION AMOUNT\n" +
		"03-15-2024,uber trip,-18.20\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "uber trip", records[0].Description)
}

func TestParseCSVMissingAmountColumn(t *testing.T) {
	csvData := []byte("Date,Description,Notes\n" +
		"03/15/2024,STARBUCKS,irrelevant\n")

	_, err := newTestParser().ParseCSV(csvData, "bank.csv")

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"amount"}, schemaErr.MissingFields)
}

func TestParseCSVAllColumnsMissing(t *testing.T) {
	csvData := []byte("Foo,Bar,Baz\n1,2,3\n")

	_, err := newTestParser().ParseCSV(csvData, "bank.csv")

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"date", "description", "amount"}, schemaErr.MissingFields)
}

func TestParseCSVUnparseableAmountToleratedPerRow(t *testing.T) {
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,GOOD ROW,-10.00\n" +
		"03/16/2024,BAD AMOUNT,N/A\n" +
		"03/17/2024,ANOTHER GOOD ROW,-20.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, records[0].HasAmount())
	assert.False(t, records[1].HasAmount())
	assert.Equal(t, "BAD AMOUNT", records[1].Description)
	assert.True(t, records[2].HasAmount())
}

func TestParseCSVUnparseableDateFailsFile(t *testing.T) {
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,GOOD ROW,-10.00\n" +
		"not-a-date,BAD DATE,-20.00\n")

	_, err := newTestParser().ParseCSV(csvData, "bank.csv")

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "date", parseErr.Field)
}

func TestParseCSVSplitDebitCredit(t *testing.T) {
	csvData := []byte("Date,Description,Debit,Credit\n" +
		"03/15/2024,GROCERY STORE,52.10,\n" +
		"03/16/2024,PAYCHECK,,2500.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Debits are outflows, so they come back negative.
	assert.Equal(t, "-52.1", records[0].Amount.Decimal.String())
	assert.Equal(t, "2500", records[1].Amount.Decimal.String())
}

func TestParseCSVCurrencySymbolsAndSeparators(t *testing.T) {
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,BIG PURCHASE,\"-$1,234.56\"\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-1234.56", records[0].Amount.Decimal.String())
}

func TestParseCSVLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	csvData := []byte("Date,Description,Amount\n03/15/2024,CAF\xe9 VISIT,-4.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CAFé VISIT", records[0].Description)
}

func TestParseCSVSkipsBlankRows(t *testing.T) {
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,ROW ONE,-1.00\n" +
		",,\n" +
		"03/16/2024,ROW TWO,-2.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseCSVBlankDescriptionCellRetained(t *testing.T) {
	// A blank memo cell in an otherwise valid row keeps the row; the
	// classifier labels such records Uncategorized later.
	csvData := []byte("Date,Description,Amount\n" +
		"03/15/2024,ROW ONE,-1.00\n" +
		"03/16/2024,,-10.00\n")

	records, err := newTestParser().ParseCSV(csvData, "bank.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1].Description)
	assert.Equal(t, "-10", records[1].Amount.Decimal.String())
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	workbook := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseExcelAliasHeaders(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Transaction Date", "Memo", "Amount"},
		{"03/15/2024", "STARBUCKS COFFEE", "-4.50"},
		{"03/16/2024", "PAYCHECK DEPOSIT", "2500.00"},
	})

	records, err := newTestParser().ParseExcel(data, "bank.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "STARBUCKS COFFEE", records[0].Description)
	assert.Equal(t, "-4.5", records[0].Amount.Decimal.String())
	assert.Equal(t, "2500", records[1].Amount.Decimal.String())
	assert.NotEmpty(t, records[0].ID)
}

func TestParseExcelCurrencySymbols(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Date", "Description", "Amount"},
		{"2024-03-15", "RENT PAYMENT", "-$1,234.56"},
	})

	records, err := newTestParser().ParseExcel(data, "bank.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-1234.56", records[0].Amount.Decimal.String())
}

func TestParseExcelMissingColumn(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Date", "Description"},
		{"2024-03-15", "RENT PAYMENT"},
	})

	_, err := newTestParser().ParseExcel(data, "bank.xlsx")
	require.Error(t, err)

	var schemaErr *parsererror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"amount"}, schemaErr.MissingFields)
}

func TestParseExcelNotAWorkbook(t *testing.T) {
	_, err := newTestParser().ParseExcel([]byte("not a workbook"), "bank.xlsx")
	require.Error(t, err)
}

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantMapping ColumnMapping
		wantMissing []string
	}{
		{
			name:        "exact names",
			headers:     []string{"date", "description", "amount"},
			wantMapping: ColumnMapping{"date": 0, "description": 1, "amount": 2},
		},
		{
			name:        "aliases in any order",
			headers:     []string{"Memo", "Date Posted", "Credit"},
			wantMapping: ColumnMapping{"date": 1, "description": 0, "amount": 2},
		},
		{
			name:        "first match wins on duplicates",
			headers:     []string{"Posting Date", "Transaction Date", "Memo", "Amount"},
			wantMapping: ColumnMapping{"date": 0, "description": 2, "amount": 3},
		},
		{
			name:        "missing description",
			headers:     []string{"Date", "Amount"},
			wantMissing: []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, missing := ResolveColumns(tt.headers, DefaultAliases())
			if tt.wantMissing != nil {
				assert.Equal(t, tt.wantMissing, missing)
				return
			}
			require.Empty(t, missing)
			assert.Equal(t, tt.wantMapping, mapping)
		})
	}
}
