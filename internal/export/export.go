// Package export writes classified records and summaries to CSV in the
// canonical ledger format.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
)

// ledgerRow is the CSV row shape for one transaction.
type ledgerRow struct {
	ID          string `csv:"Id"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
}

// summaryRow is the CSV row shape for one category aggregate.
type summaryRow struct {
	Category         string `csv:"Category"`
	TotalAmount      string `csv:"Total Amount"`
	TransactionCount int    `csv:"Transaction Count"`
	AverageAmount    string `csv:"Average Amount"`
}

// Writer exports records and summaries as CSV.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a CSV export writer. A zero delimiter means comma.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// WriteRecords writes the ledger rows to w. Dates are ISO formatted; null
// amounts export as empty cells.
func (e *Writer) WriteRecords(w io.Writer, records []models.TransactionRecord) error {
	rows := make([]ledgerRow, len(records))
	for i, record := range records {
		amount := ""
		if record.HasAmount() {
			amount = record.Amount.Decimal.StringFixed(2)
		}
		rows[i] = ledgerRow{
			ID:          record.ID,
			Date:        record.Date.Format("2006-01-02"),
			Description: record.Description,
			Amount:      amount,
			Category:    record.Category,
		}
	}

	if err := gocsv.MarshalCSV(&rows, e.newCSVWriter(w)); err != nil {
		return fmt.Errorf("writing ledger csv: %w", err)
	}
	e.logger.WithField(logging.FieldCount, len(rows)).Info("Wrote ledger CSV")
	return nil
}

// WriteSummaries writes the category aggregates to w, sorted by category name
// for stable output.
func (e *Writer) WriteSummaries(w io.Writer, summaries map[string]models.CategorySummary) error {
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]summaryRow, 0, len(names))
	for _, name := range names {
		summary := summaries[name]
		rows = append(rows, summaryRow{
			Category:         name,
			TotalAmount:      summary.TotalAmount.StringFixed(2),
			TransactionCount: summary.TransactionCount,
			AverageAmount:    summary.AverageAmount.StringFixed(2),
		})
	}

	if err := gocsv.MarshalCSV(&rows, e.newCSVWriter(w)); err != nil {
		return fmt.Errorf("writing summary csv: %w", err)
	}
	e.logger.WithField(logging.FieldCount, len(rows)).Info("Wrote summary CSV")
	return nil
}

// WriteRecordsFile writes the ledger rows to path, creating parent
// directories as needed.
func (e *Writer) WriteRecordsFile(path string, records []models.TransactionRecord) error {
	return e.writeFile(path, func(f io.Writer) error {
		return e.WriteRecords(f, records)
	})
}

// WriteSummariesFile writes the category aggregates to path.
func (e *Writer) WriteSummariesFile(path string, summaries map[string]models.CategorySummary) error {
	return e.writeFile(path, func(f io.Writer) error {
		return e.WriteSummaries(f, summaries)
	})
}

func (e *Writer) writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close output file")
		}
	}()
	return write(file)
}

func (e *Writer) newCSVWriter(w io.Writer) *gocsv.SafeCSVWriter {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter
	return gocsv.NewSafeCSVWriter(csvWriter)
}
