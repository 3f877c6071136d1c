// Package tableparser implements the structured path of the statement parser:
// CSV and Excel files with arbitrary column layouts are reduced to the three
// canonical columns via fuzzy header resolution.
package tableparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"finmate/statements/internal/currencyutils"
	"finmate/statements/internal/dateutils"
	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
	"finmate/statements/internal/parsererror"
)

// Parser converts structured statement tables into canonical records.
type Parser struct {
	aliases AliasTable
	logger  logging.Logger
}

// NewParser creates a table parser with the given alias table. A nil alias
// table uses the defaults.
func NewParser(aliases AliasTable, logger logging.Logger) *Parser {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Parser{aliases: aliases, logger: logger}
}

// ParseCSV parses CSV statement bytes. Decoding tries UTF-8 first and falls
// back to Latin-1 for files exported by older banking software.
func (p *Parser) ParseCSV(data []byte, filename string) ([]models.TransactionRecord, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decoding '%s': %w", filename, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV '%s': %w", filename, err)
	}
	return p.parseRows(rows, filename)
}

// ParseExcel parses xls/xlsx statement bytes, reading the first sheet.
func (p *Parser) ParseExcel(data []byte, filename string) ([]models.TransactionRecord, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook '%s': %w", filename, err)
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close workbook",
				logging.Field{Key: logging.FieldFile, Value: filename})
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook '%s' has no sheets", filename)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet '%s': %w", sheets[0], err)
	}
	return p.parseRows(rows, filename)
}

// parseRows resolves the canonical columns and converts every data row.
// Unparseable amount cells become null amounts; unparseable dates fail the
// whole file since date is load-bearing for downstream aggregation.
func (p *Parser) parseRows(rows [][]string, filename string) ([]models.TransactionRecord, error) {
	if len(rows) == 0 {
		return nil, &parsererror.SchemaError{
			Filename:      filename,
			MissingFields: []string{FieldDate, FieldDescription, FieldAmount},
		}
	}

	headers := rows[0]
	mapping, missing := ResolveColumns(headers, p.aliases)
	if len(missing) > 0 {
		return nil, &parsererror.SchemaError{Filename: filename, MissingFields: missing}
	}

	debitIdx, creditIdx, split := splitAmountColumns(headers, mapping[FieldAmount])

	p.logger.Debug("Resolved statement columns",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldColumn, Value: mapping})

	records := make([]models.TransactionRecord, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		date, _, err := dateutils.ParseDate(cell(row, mapping[FieldDate]))
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: "table",
				Field:  FieldDate,
				Value:  cell(row, mapping[FieldDate]),
				Err:    err,
			}
		}

		var amount decimal.NullDecimal
		if split {
			amount = mergeDebitCredit(cell(row, debitIdx), cell(row, creditIdx))
		} else {
			amount = currencyutils.ParseAmount(cell(row, mapping[FieldAmount]))
		}
		if !amount.Valid {
			p.logger.Debug("Unparseable amount cell, keeping row with null amount",
				logging.Field{Key: logging.FieldFile, Value: filename},
				logging.Field{Key: logging.FieldRow, Value: rowNum + 2})
		}

		record := models.TransactionRecord{
			Date:        date,
			Description: strings.TrimSpace(cell(row, mapping[FieldDescription])),
			Amount:      amount,
		}
		record.ID = newRecordID()
		records = append(records, record)
	}

	p.logger.Info("Parsed structured statement",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// splitAmountColumns detects the split debit/credit layout: the resolved
// amount header is one of a debit/credit pair. Returns both indices when the
// pair exists.
func splitAmountColumns(headers []string, amountIdx int) (debitIdx, creditIdx int, split bool) {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = NormalizeHeader(header)
	}

	debitIdx, hasDebit := findExact(normalized, "debit")
	creditIdx, hasCredit := findExact(normalized, "credit")
	if !hasDebit || !hasCredit {
		return 0, 0, false
	}
	if amountIdx != debitIdx && amountIdx != creditIdx {
		return 0, 0, false
	}
	return debitIdx, creditIdx, true
}

// mergeDebitCredit combines a debit/credit column pair into one signed
// amount: debits are outflows (negative), credits inflows (positive). When
// neither cell parses the amount is null.
func mergeDebitCredit(debitCell, creditCell string) decimal.NullDecimal {
	debit := currencyutils.ParseAmount(debitCell)
	credit := currencyutils.ParseAmount(creditCell)

	if !debit.Valid && !credit.Valid {
		return decimal.NullDecimal{}
	}

	total := decimal.Zero
	if credit.Valid {
		total = total.Add(credit.Decimal)
	}
	if debit.Valid {
		total = total.Sub(debit.Decimal.Abs())
	}
	return decimal.NewNullDecimal(total)
}

// decodeText returns the bytes as a string, falling back from UTF-8 to
// Latin-1 when the content is not valid UTF-8.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoder := charmap.ISO8859_1.NewDecoder()
	decoded, err := io.ReadAll(decoder.Reader(bytes.NewReader(data)))
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decode: %w", err)
	}
	return string(decoded), nil
}

func newRecordID() string {
	return uuid.New().String()
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
