// Package currencyutils provides helpers for the pt-BR amount format used by
// the statements this service reads ("1.234,56": dot thousands separator,
// comma decimal separator).
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// StripThousands removes every dot from a captured balance token. The comma
// and the digit order are untouched, so "15.043,90" becomes "15043,90".
// This is the only cleaning applied to exported balances.
func StripThousands(token string) string {
	return strings.ReplaceAll(token, ".", "")
}

// ParseAmount parses a pt-BR formatted amount ("1.234,56" or "1234,56") into
// a decimal value. Empty input parses to zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := strings.ReplaceAll(StripThousands(strings.TrimSpace(amountStr)), ",", ".")

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		log.WithField("value", amountStr).Debug("failed to parse amount")
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// FormatAmount renders a decimal back in the comma-decimal form with two
// places, without thousands separators: 15043.9 becomes "15043,90".
func FormatAmount(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}
