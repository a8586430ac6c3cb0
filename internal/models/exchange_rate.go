package models

import "github.com/shopspring/decimal"

// ExchangeRate is a row of the exchange_rates table; (from, to) is unique.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	FromCurrencyID string          `db:"from_currency_id"` // FK -> currencies
	ToCurrencyID   string          `db:"to_currency_id"`   // FK -> currencies
	Rate           decimal.Decimal `db:"rate"`             // NUMERIC(20,10), > 0
	AuditFields
}
