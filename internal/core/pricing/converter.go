package pricing

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertPrice converts amount from one currency to another.
//
// When no rate exists the original amount is returned unchanged together with a
// degraded-conversion Warning wrapping ErrRateNotFound. No rounding is applied.
func ConvertPrice(amount decimal.Decimal, from, to string, rates []domain.ExchangeRate) (decimal.Decimal, *Warning) {
	factor, found := ResolveRate(from, to, rates)
	if !found {
		return amount, newDegradedWarning(from, to)
	}
	return amount.Mul(factor), nil
}
