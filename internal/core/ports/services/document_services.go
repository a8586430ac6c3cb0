package services

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
)

// InvoiceSvcFacade prices, stores and moves invoices through their lifecycle.
type InvoiceSvcFacade interface {
	// CreateInvoice prices the request and stores it as a DRAFT. The returned warnings
	// describe lines that were left unconverted.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, []pricing.Warning, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, req dto.UpdateInvoiceStatusRequest, userID string) (*domain.Invoice, error)
}

// PosSvcFacade checks out point-of-sale carts.
type PosSvcFacade interface {
	CreatePosOrder(ctx context.Context, req dto.CreatePosOrderRequest, creatorUserID string) (*domain.PosOrder, []pricing.Warning, error)
	GetPosOrderByID(ctx context.Context, posOrderID string) (*domain.PosOrder, error)
}
