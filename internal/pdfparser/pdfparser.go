// Package pdfparser implements the unstructured path of the statement parser.
// Transaction triples are recovered from extracted page text with two line
// templates: date-description-amount and date-amount-description.
package pdfparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finmate/statements/internal/currencyutils"
	"finmate/statements/internal/dateutils"
	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
	"finmate/statements/internal/parsererror"
)

// pageSeparator joins extracted pages before template matching.
const pageSeparator = "\n"

var (
	// Template 1: date, description, amount at end of line.
	lineDescAmount = regexp.MustCompile(
		`(?m)^\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s*$`)

	// Template 2: date, amount, then description to end of line.
	lineAmountDesc = regexp.MustCompile(
		`(?m)^\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s+(.+?)\s*$`)
)

// Parser extracts canonical records from PDF statements.
type Parser struct {
	extractor TextExtractor
	logger    logging.Logger
}

// NewParser creates a PDF parser using the given extractor. A nil extractor
// uses the production PDF library implementation.
func NewParser(extractor TextExtractor, logger logging.Logger) *Parser {
	if extractor == nil {
		extractor = NewPDFTextExtractor()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Parser{extractor: extractor, logger: logger}
}

// Parse extracts transactions from PDF bytes. Both templates run against the
// full text; identical triples are deduplicated. Zero recovered transactions
// is an EmptyResultError.
func (p *Parser) Parse(data []byte, filename string) ([]models.TransactionRecord, error) {
	pages, err := p.extractor.ExtractPages(data)
	if err != nil {
		return nil, fmt.Errorf("extracting text from '%s': %w", filename, err)
	}

	text := strings.Join(pages, pageSeparator)

	var records []models.TransactionRecord
	seen := make(map[string]bool)

	for _, match := range lineDescAmount.FindAllStringSubmatch(text, -1) {
		p.appendMatch(&records, seen, match[1], match[2], match[3])
	}
	for _, match := range lineAmountDesc.FindAllStringSubmatch(text, -1) {
		p.appendMatch(&records, seen, match[1], match[3], match[2])
	}

	if len(records) == 0 {
		return nil, &parsererror.EmptyResultError{Filename: filename}
	}

	p.logger.Info("Extracted transactions from PDF",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// appendMatch converts one regex match to a record. Matches whose date token
// does not resolve to a real calendar date are layout noise and are skipped.
func (p *Parser) appendMatch(records *[]models.TransactionRecord, seen map[string]bool, dateStr, desc, amountStr string) {
	date, _, err := dateutils.ParseDate(dateStr)
	if err != nil {
		p.logger.Debug("Skipping matched line with invalid date",
			logging.Field{Key: "date", Value: dateStr})
		return
	}

	desc = strings.TrimSpace(desc)
	amount := currencyutils.MustParseAmount(amountStr)

	key := fmt.Sprintf("%s|%s|%s", dateutils.ToISODate(date), desc, amount.String())
	if seen[key] {
		return
	}
	seen[key] = true

	*records = append(*records, models.TransactionRecord{
		ID:          uuid.New().String(),
		Date:        date,
		Description: desc,
		Amount:      decimal.NewNullDecimal(amount),
	})
}
