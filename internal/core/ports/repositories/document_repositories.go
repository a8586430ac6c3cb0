package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice together with its lines.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices, newest issue date first, without lines.
	// The returned token is nil on the last page.
	ListInvoices(ctx context.Context, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	// SaveInvoice persists the invoice header and all of its lines atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus sets a new status on an invoice.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// PosOrderReader defines read operations for point-of-sale orders
type PosOrderReader interface {
	FindPosOrderByID(ctx context.Context, posOrderID string) (*domain.PosOrder, error)
}

// PosOrderWriter defines write operations for point-of-sale orders
type PosOrderWriter interface {
	// SavePosOrder persists the order and all of its lines atomically.
	SavePosOrder(ctx context.Context, order domain.PosOrder) error
}

// PosOrderRepositoryFacade combines all POS order repository interfaces
type PosOrderRepositoryFacade interface {
	PosOrderReader
	PosOrderWriter
}
