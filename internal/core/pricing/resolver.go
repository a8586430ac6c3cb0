package pricing

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ResolveRate returns the factor converting one unit of from into units of to.
//
// Identical ids always resolve to 1 without looking at rates. Otherwise the first entry
// whose (FromCurrencyID, ToCurrencyID) matches exactly is used; a reverse-direction entry
// is never inverted. found is false when no entry matches.
func ResolveRate(from, to string, rates []domain.ExchangeRate) (factor decimal.Decimal, found bool) {
	if from == to {
		return one, true
	}
	for _, r := range rates {
		if r.FromCurrencyID == from && r.ToCurrencyID == to {
			return r.Rate, true
		}
	}
	return decimal.Zero, false
}
