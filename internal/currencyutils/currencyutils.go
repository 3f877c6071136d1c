// Package currencyutils provides the amount coercion used by both parser
// paths. Amounts arrive with currency symbols, thousands separators and
// accounting-style parentheses; all are normalized before decimal parsing.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥₹\s]`)

// ParseAmount parses a currency string into a NullDecimal. Unparseable values
// (including empty and "N/A" style cells) yield an invalid NullDecimal rather
// than an error: structured-path rows with bad amount cells are retained.
func ParseAmount(amountStr string) decimal.NullDecimal {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.NullDecimal{}
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(amount)
}

// MustParseAmount parses a currency string that is known to be well-formed,
// such as a regex-matched PDF amount token. Returns zero on failure.
func MustParseAmount(amountStr string) decimal.Decimal {
	parsed := ParseAmount(amountStr)
	if !parsed.Valid {
		return decimal.Zero
	}
	return parsed.Decimal
}

// StandardizeAmount strips currency symbols, thousands separators and
// whitespace, and converts accounting parentheses to a leading minus, so the
// result parses with decimal.NewFromString. Returns "" for values with no
// digits at all.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	// Accounting negatives: (123.45) -> -123.45
	negative := false
	if strings.HasPrefix(amountStr, "(") && strings.HasSuffix(amountStr, ")") {
		negative = true
		amountStr = amountStr[1 : len(amountStr)-1]
	}

	amountStr = symbolRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	if !strings.ContainsAny(amountStr, "0123456789") {
		return ""
	}

	if negative && !strings.HasPrefix(amountStr, "-") {
		amountStr = "-" + amountStr
	}
	return amountStr
}
