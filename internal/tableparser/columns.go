package tableparser

import "strings"

// Canonical field names resolved from statement headers.
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldAmount      = "amount"
)

// AliasTable maps each canonical field to the known header aliases for it.
// Resolution is a case-insensitive substring scan, not an exact match, so
// "Transaction Date" and "Date Posted" both bind to date. Ambiguous headers
// can bind incorrectly; this is an accepted heuristic.
type AliasTable map[string][]string

// DefaultAliases returns the alias table for common US bank exports.
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldDate:        {"date", "transaction date", "posting date", "date posted"},
		FieldDescription: {"description", "transaction description", "details", "memo", "narration"},
		FieldAmount:      {"amount", "transaction amount", "debit", "credit", "balance"},
	}
}

// ColumnMapping is the result of resolving headers against an alias table:
// canonical field name -> source column index.
type ColumnMapping map[string]int

// ResolveColumns binds each canonical field to the first header (in source
// column order) whose normalized name contains one of the field's aliases.
// Returns the mapping and the canonical fields that could not be resolved.
func ResolveColumns(headers []string, aliases AliasTable) (ColumnMapping, []string) {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = NormalizeHeader(header)
	}

	mapping := make(ColumnMapping, 3)
	var missing []string
	for _, field := range []string{FieldDate, FieldDescription, FieldAmount} {
		index, ok := findColumn(normalized, aliases[field])
		if !ok {
			missing = append(missing, field)
			continue
		}
		mapping[field] = index
	}
	return mapping, missing
}

// findColumn returns the index of the first header containing any alias.
func findColumn(normalizedHeaders, aliases []string) (int, bool) {
	for i, header := range normalizedHeaders {
		for _, alias := range aliases {
			if strings.Contains(header, alias) {
				return i, true
			}
		}
	}
	return 0, false
}

// NormalizeHeader lower-cases and trims a header name.
func NormalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// findExact returns the index of the first header containing the given
// substring, used to pair split debit/credit columns.
func findExact(normalizedHeaders []string, substr string) (int, bool) {
	for i, header := range normalizedHeaders {
		if strings.Contains(header, substr) {
			return i, true
		}
	}
	return 0, false
}
