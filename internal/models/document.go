package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLine is a row of invoice_lines or pos_order_lines.
type DocumentLine struct {
	LineID        string          `db:"line_id"`
	DocumentID    string          `db:"document_id"`
	Position      int             `db:"position"`
	CatalogItemID sql.NullString  `db:"catalog_item_id"`
	Description   string          `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	VATRate       decimal.Decimal `db:"vat_rate"`
	LineTotal     decimal.Decimal `db:"line_total"`
	Degraded      bool            `db:"degraded"`
}

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID          string          `db:"invoice_id"`
	Number             string          `db:"number"`
	ClientName         string          `db:"client_name"`
	DocumentCurrencyID string          `db:"document_currency_id"`
	Status             string          `db:"status"`
	IssueDate          time.Time       `db:"issue_date"`
	DueDate            sql.NullTime    `db:"due_date"`
	Notes              string          `db:"notes"`
	Total              decimal.Decimal `db:"total"`
	Degraded           bool            `db:"degraded"`
	AuditFields
}

// PosOrder is a row of the pos_orders table.
type PosOrder struct {
	PosOrderID         string          `db:"pos_order_id"`
	DocumentCurrencyID string          `db:"document_currency_id"`
	PaymentMethod      string          `db:"payment_method"`
	Total              decimal.Decimal `db:"total"`
	Degraded           bool            `db:"degraded"`
	AuditFields
}
