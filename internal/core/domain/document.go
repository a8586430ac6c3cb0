package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// CanTransitionTo reports whether an invoice in status s may move to next.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	switch s {
	case InvoiceDraft:
		return next == InvoiceIssued || next == InvoiceCancelled
	case InvoiceIssued:
		return next == InvoicePaid || next == InvoiceCancelled
	default:
		return false
	}
}

// PaymentMethod is how a point-of-sale order was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// DocumentLine is a persisted, already priced line of an invoice or POS order.
// All amounts are in the document currency and kept at full precision.
type DocumentLine struct {
	LineID        string          `json:"lineID"`
	Position      int             `json:"position"`
	CatalogItemID *string         `json:"catalogItemID,omitempty"` // nil for custom lines
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	VATRate       decimal.Decimal `json:"vatRate"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	Degraded      bool            `json:"degraded"` // unit price left unconverted, no rate found
}

// Invoice is a billed document addressed to a client.
type Invoice struct {
	InvoiceID          string          `json:"invoiceID"`
	Number             string          `json:"number"`
	ClientName         string          `json:"clientName"`
	DocumentCurrencyID string          `json:"documentCurrencyID"`
	Status             InvoiceStatus   `json:"status"`
	IssueDate          time.Time       `json:"issueDate"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	Notes              string          `json:"notes"`
	Lines              []DocumentLine  `json:"lines"`
	Total              decimal.Decimal `json:"total"`
	Degraded           bool            `json:"degraded"`
	AuditFields
}

// PosOrder is a point-of-sale cart that has been checked out.
type PosOrder struct {
	PosOrderID         string          `json:"posOrderID"`
	DocumentCurrencyID string          `json:"documentCurrencyID"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	Lines              []DocumentLine  `json:"lines"`
	Total              decimal.Decimal `json:"total"`
	Degraded           bool            `json:"degraded"`
	AuditFields
}
