package pricing

import (
	"errors"
	"fmt"
)

// ErrRateNotFound means the table has no entry for a non-identity currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrInvalidLineItem means a line item carries a negative amount or a VAT rate outside [0,1].
var ErrInvalidLineItem = errors.New("invalid line item")

// WarningConversionDegraded is the code carried by warnings from a degraded conversion.
const WarningConversionDegraded = "CONVERSION_DEGRADED"

// Warning is a non-fatal condition raised while pricing. It never aborts a computation.
type Warning struct {
	Code           string `json:"code"`
	FromCurrencyID string `json:"fromCurrencyID"`
	ToCurrencyID   string `json:"toCurrencyID"`
	// Line is the zero-based line index the warning belongs to, -1 when not line-bound.
	Line int   `json:"line"`
	Err  error `json:"-"`
}

func newDegradedWarning(from, to string) *Warning {
	return &Warning{
		Code:           WarningConversionDegraded,
		FromCurrencyID: from,
		ToCurrencyID:   to,
		Line:           -1,
		Err:            ErrRateNotFound,
	}
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %v", w.Code, w.FromCurrencyID, w.ToCurrencyID, w.Err)
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// Message is a user-facing description of the warning.
func (w *Warning) Message() string {
	return fmt.Sprintf("no exchange rate from %s to %s, amount left unconverted", w.FromCurrencyID, w.ToCurrencyID)
}
