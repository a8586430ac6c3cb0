package dto

import (
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest prices and persists a new invoice.
type CreateInvoiceRequest struct {
	ClientName         string             `json:"clientName" binding:"required,nospaces,max=200"`
	DocumentCurrencyID string             `json:"documentCurrencyID" binding:"required"`
	IssueDate          *time.Time         `json:"issueDate"`
	DueDate            *time.Time         `json:"dueDate"`
	Notes              string             `json:"notes" binding:"max=2000"`
	Lines              []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// QuoteRequest returns the pricing part of the invoice request.
func (r CreateInvoiceRequest) QuoteRequest() QuoteRequest {
	return QuoteRequest{DocumentCurrencyID: r.DocumentCurrencyID, Lines: r.Lines}
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ISSUED PAID CANCELLED"`
}

// ListInvoicesParams holds parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    string  `form:"status" binding:"omitempty,oneof=DRAFT ISSUED PAID CANCELLED"`
}

// CreatePosOrderRequest checks out a point-of-sale cart.
type CreatePosOrderRequest struct {
	DocumentCurrencyID string             `json:"documentCurrencyID" binding:"required"`
	PaymentMethod      string             `json:"paymentMethod" binding:"required,oneof=CASH CARD"`
	Lines              []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// QuoteRequest returns the pricing part of the order request.
func (r CreatePosOrderRequest) QuoteRequest() QuoteRequest {
	return QuoteRequest{DocumentCurrencyID: r.DocumentCurrencyID, Lines: r.Lines}
}

// DocumentLineResponse is a persisted priced line.
type DocumentLineResponse struct {
	LineID        string          `json:"lineID"`
	Position      int             `json:"position"`
	CatalogItemID *string         `json:"catalogItemID,omitempty"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	VATRate       decimal.Decimal `json:"vatRate"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	Degraded      bool            `json:"degraded"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID          string                 `json:"invoiceID"`
	Number             string                 `json:"number"`
	ClientName         string                 `json:"clientName"`
	DocumentCurrencyID string                 `json:"documentCurrencyID"`
	Status             string                 `json:"status"`
	IssueDate          time.Time              `json:"issueDate"`
	DueDate            *time.Time             `json:"dueDate,omitempty"`
	Notes              string                 `json:"notes"`
	Lines              []DocumentLineResponse `json:"lines"`
	Total              decimal.Decimal        `json:"total"`
	Degraded           bool                   `json:"degraded"`
	Warnings           []WarningResponse      `json:"warnings,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	CreatedBy          string                 `json:"createdBy"`
	LastUpdatedAt      time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy      string                 `json:"lastUpdatedBy"`
}

// ListInvoicesResponse is a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// PosOrderResponse defines the data returned for a POS order.
type PosOrderResponse struct {
	PosOrderID         string                 `json:"posOrderID"`
	DocumentCurrencyID string                 `json:"documentCurrencyID"`
	PaymentMethod      string                 `json:"paymentMethod"`
	Lines              []DocumentLineResponse `json:"lines"`
	Total              decimal.Decimal        `json:"total"`
	Degraded           bool                   `json:"degraded"`
	Warnings           []WarningResponse      `json:"warnings,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	CreatedBy          string                 `json:"createdBy"`
}

// ToDocumentLineResponses converts persisted lines.
func ToDocumentLineResponses(lines []domain.DocumentLine) []DocumentLineResponse {
	res := make([]DocumentLineResponse, len(lines))
	for i, l := range lines {
		res[i] = DocumentLineResponse{
			LineID:        l.LineID,
			Position:      l.Position,
			CatalogItemID: l.CatalogItemID,
			Description:   l.Description,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			VATRate:       l.VATRate,
			LineTotal:     l.LineTotal,
			Degraded:      l.Degraded,
		}
	}
	return res
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:          inv.InvoiceID,
		Number:             inv.Number,
		ClientName:         inv.ClientName,
		DocumentCurrencyID: inv.DocumentCurrencyID,
		Status:             string(inv.Status),
		IssueDate:          inv.IssueDate,
		DueDate:            inv.DueDate,
		Notes:              inv.Notes,
		Lines:              ToDocumentLineResponses(inv.Lines),
		Total:              inv.Total,
		Degraded:           inv.Degraded,
		CreatedAt:          inv.CreatedAt,
		CreatedBy:          inv.CreatedBy,
		LastUpdatedAt:      inv.LastUpdatedAt,
		LastUpdatedBy:      inv.LastUpdatedBy,
	}
}

// ToPosOrderResponse converts a domain.PosOrder to PosOrderResponse DTO.
func ToPosOrderResponse(o *domain.PosOrder) PosOrderResponse {
	return PosOrderResponse{
		PosOrderID:         o.PosOrderID,
		DocumentCurrencyID: o.DocumentCurrencyID,
		PaymentMethod:      string(o.PaymentMethod),
		Lines:              ToDocumentLineResponses(o.Lines),
		Total:              o.Total,
		Degraded:           o.Degraded,
		CreatedAt:          o.CreatedAt,
		CreatedBy:          o.CreatedBy,
	}
}
