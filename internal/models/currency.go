package models

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID string `db:"currency_id"` // Primary Key (UUID)
	Code       string `db:"code"`        // Unique, e.g. "BAM"
	Symbol     string `db:"symbol"`
	Name       string `db:"name"`
	Precision  int    `db:"precision"`
	IsDefault  bool   `db:"is_default"` // Partial unique index allows a single TRUE row
	AuditFields
}
