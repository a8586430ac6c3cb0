package pricing

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// ErrNoDefaultCurrency means the directory has no currency flagged as default, so
// catalog prices have no known home currency.
var ErrNoDefaultCurrency = errors.New("no default currency configured")

// ErrUnknownCurrency means a currency id is not part of the directory.
var ErrUnknownCurrency = errors.New("unknown currency")

// Context holds the inputs of one pricing computation. Currencies only serve symbol
// lookup; they do not affect arithmetic.
type Context struct {
	DocumentCurrencyID string
	HomeCurrencyID     string
	Rates              []domain.ExchangeRate
	Currencies         []domain.Currency
}

// NewContext derives a Context from a snapshot. The home currency is the directory
// default; documentCurrencyID must exist in the directory.
func NewContext(snapshot domain.PricingSnapshot, documentCurrencyID string) (Context, error) {
	home, ok := snapshot.DefaultCurrency()
	if !ok {
		return Context{}, ErrNoDefaultCurrency
	}
	if _, ok := snapshot.FindCurrency(documentCurrencyID); !ok {
		return Context{}, fmt.Errorf("%w: document currency %s", ErrUnknownCurrency, documentCurrencyID)
	}
	return Context{
		DocumentCurrencyID: documentCurrencyID,
		HomeCurrencyID:     home.CurrencyID,
		Rates:              snapshot.Rates,
		Currencies:         snapshot.Currencies,
	}, nil
}

// Symbol returns the display symbol of currencyID, or the id itself when unknown.
func (c Context) Symbol(currencyID string) string {
	for _, cur := range c.Currencies {
		if cur.CurrencyID == currencyID {
			return cur.Symbol
		}
	}
	return currencyID
}

// Currency looks currencyID up in the directory.
func (c Context) Currency(currencyID string) (domain.Currency, bool) {
	for _, cur := range c.Currencies {
		if cur.CurrencyID == currencyID {
			return cur, true
		}
	}
	return domain.Currency{}, false
}
