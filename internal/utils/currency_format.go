package utils

import (
	"strings"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return amount.StringFixed(int32(precision))
}

// FormatAmount renders an amount for display: symbol (or code) followed by the amount
// rounded to the currency precision, e.g. "KM 68.65".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	label := strings.TrimSpace(currency.Symbol)
	if label == "" {
		label = currency.Code
	}
	formatted := FormatWithCurrencyPrecision(amount, currency)
	if label == "" {
		return formatted
	}
	return label + " " + formatted
}
