package currencyutils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStripThousands(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single thousands separator", "15.043,90", "15043,90"},
		{"multiple thousands separators", "1.234.567,89", "1234567,89"},
		{"no separator", "200,00", "200,00"},
		{"small amount", "0,50", "0,50"},
		{"empty string", "", ""},
		{"dots only", "...", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripThousands(tc.input))
		})
	}
}

func TestStripThousands_PreservesDigitOrder(t *testing.T) {
	inputs := []string{"15.043,90", "1.234.567,89", "9.876,00", "45,10"}

	for _, input := range inputs {
		cleaned := StripThousands(input)

		assert.NotContains(t, cleaned, ".")

		// Digits and the comma keep their relative order.
		keep := func(r rune) bool { return r != '.' }
		var want strings.Builder
		for _, r := range input {
			if keep(r) {
				want.WriteRune(r)
			}
		}
		assert.Equal(t, want.String(), cleaned)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Empty string", "", decimal.Zero, false},
		{"Comma decimal separator", "123,45", decimal.NewFromFloat(123.45), false},
		{"Thousands and decimal", "15.043,90", decimal.NewFromFloat(15043.90), false},
		{"Multiple thousands groups", "1.234.567,89", decimal.NewFromFloat(1234567.89), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"With spaces", "  200,00  ", decimal.NewFromFloat(200), false},
		{"Two commas", "12,34,56", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

// Stripping the thousands separators never changes the numeric value.
func TestParseAmount_CleaningKeepsValue(t *testing.T) {
	inputs := []string{"15.043,90", "1.234.567,89", "9.876,00", "0,50"}

	for _, input := range inputs {
		raw, err := ParseAmount(input)
		assert.NoError(t, err)

		cleaned, err := ParseAmount(StripThousands(input))
		assert.NoError(t, err)

		assert.True(t, raw.Equal(cleaned), "value of %q changed after cleaning", input)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"two places kept", decimal.NewFromFloat(15043.90), "15043,90"},
		{"one place padded", decimal.NewFromFloat(1.2), "1,20"},
		{"integer amount", decimal.NewFromInt(200), "200,00"},
		{"zero", decimal.Zero, "0,00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount))
		})
	}
}
