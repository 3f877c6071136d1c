package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{name: "plain", input: "123.45", want: "123.45", valid: true},
		{name: "negative", input: "-123.45", want: "-123.45", valid: true},
		{name: "explicit plus", input: "+50.00", want: "50", valid: true},
		{name: "dollar sign", input: "$1,234.56", want: "1234.56", valid: true},
		{name: "negative with symbol", input: "-$45.00", want: "-45", valid: true},
		{name: "thousands separators", input: "12,345,678.90", want: "12345678.9", valid: true},
		{name: "accounting parentheses", input: "(89.99)", want: "-89.99", valid: true},
		{name: "internal spaces", input: "1 234.56", want: "1234.56", valid: true},
		{name: "not a number", input: "N/A", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "dash placeholder", input: "--", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestMustParseAmount(t *testing.T) {
	assert.Equal(t, "-1234.56", MustParseAmount("-$1,234.56").String())
	assert.True(t, MustParseAmount("garbage").IsZero())
}
