package domain

import "github.com/shopspring/decimal"

// DefaultCurrencyPrecision is used when a currency is created without an explicit precision.
const DefaultCurrencyPrecision = 2

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (UUID)
	Code       string `json:"code"`       // ISO 4217, unique (e.g., "BAM")
	Symbol     string `json:"symbol"`     // e.g., "KM"
	Name       string `json:"name"`       // e.g., "Convertible Mark"
	Precision  int    `json:"precision"`  // Decimal places used for display only
	IsDefault  bool   `json:"isDefault"`  // Home currency of the catalog; at most one
	AuditFields
}

// ExchangeRate is a directed conversion factor: one unit of FromCurrencyID buys Rate units
// of ToCurrencyID. A rate for A->B says nothing about B->A.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"` // > 0
	AuditFields
}
