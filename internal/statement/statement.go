// Package statement is the entry point of the parsing pipeline: it dispatches
// raw file bytes to the structured or unstructured parser by file extension.
package statement

import (
	"path/filepath"
	"strings"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
	"finmate/statements/internal/parsererror"
	"finmate/statements/internal/pdfparser"
	"finmate/statements/internal/tableparser"
)

// Parser normalizes arbitrary-format statement files into canonical records.
type Parser struct {
	table  *tableparser.Parser
	pdf    *pdfparser.Parser
	logger logging.Logger
}

// NewParser wires the two format paths. Either sub-parser may be nil to get
// the default construction.
func NewParser(table *tableparser.Parser, pdf *pdfparser.Parser, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if table == nil {
		table = tableparser.NewParser(nil, logger)
	}
	if pdf == nil {
		pdf = pdfparser.NewParser(nil, logger)
	}
	return &Parser{table: table, pdf: pdf, logger: logger}
}

// Parse converts statement file bytes into canonical transaction records.
// Recognized extensions: csv, xls, xlsx, pdf (case-insensitive).
func (p *Parser) Parse(data []byte, filename string) ([]models.TransactionRecord, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	p.logger.Info("Parsing statement",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldFormat, Value: ext})

	switch ext {
	case "csv":
		return p.table.ParseCSV(data, filename)
	case "xls", "xlsx":
		return p.table.ParseExcel(data, filename)
	case "pdf":
		return p.pdf.Parse(data, filename)
	default:
		return nil, &parsererror.UnsupportedFormatError{Filename: filename, Extension: ext}
	}
}
