// Package parsererror defines the typed errors surfaced by the statement
// parsing and classification pipeline. Callers are expected to use errors.As
// to distinguish the failure kinds.
package parsererror

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError indicates that a file's extension is not one of the
// recognized statement formats (csv, xls, xlsx, pdf).
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format '%s' for '%s': expected csv, xls, xlsx or pdf",
		e.Extension, e.Filename)
}

// SchemaError indicates that a structured statement file is missing one or
// more of the required date/description/amount columns. MissingFields names
// the canonical fields that could not be resolved against any header.
type SchemaError struct {
	Filename      string
	MissingFields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns in '%s': %s",
		e.Filename, strings.Join(e.MissingFields, ", "))
}

// EmptyResultError indicates that a PDF statement yielded no transactions
// after both extraction templates were applied to every page.
type EmptyResultError struct {
	Filename string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no transactions found in '%s'", e.Filename)
}

// MissingFieldError indicates a structurally incomplete record handed to the
// pipeline by an external feed. Blank text in an otherwise well-formed record
// is not this error: the classifier tolerates blank descriptions and labels
// them Uncategorized.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d is missing required field '%s'", e.Index, e.Field)
}

// ParseError represents a failure to parse a specific field value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
