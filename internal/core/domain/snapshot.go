package domain

import "time"

// PricingSnapshot is one consistent read of the currency directory and the rate table.
// A whole document is priced against a single snapshot so rates cannot change between
// its lines.
type PricingSnapshot struct {
	Currencies []Currency     `json:"currencies"`
	Rates      []ExchangeRate `json:"rates"`
	LoadedAt   time.Time      `json:"loadedAt"`
}

// DefaultCurrency returns the currency flagged as default. ok is false when none is.
// If the data ever holds several, the first wins.
func (s PricingSnapshot) DefaultCurrency() (Currency, bool) {
	for _, c := range s.Currencies {
		if c.IsDefault {
			return c, true
		}
	}
	return Currency{}, false
}

// FindCurrency looks a currency up by id.
func (s PricingSnapshot) FindCurrency(currencyID string) (Currency, bool) {
	for _, c := range s.Currencies {
		if c.CurrencyID == currencyID {
			return c, true
		}
	}
	return Currency{}, false
}
