package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/google/uuid"
)

const defaultInvoicePageSize = 20

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	pricing     portssvc.PricingSvc
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, pricingSvc portssvc.PricingSvc) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: repo, pricing: pricingSvc}
}

// CreateInvoice prices the lines and stores the invoice as a draft. A line whose price
// could not be converted is stored as is and flagged degraded.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, []pricing.Warning, error) {
	now := s.Now()
	issueDate := calendarDay(now)
	if req.IssueDate != nil {
		issueDate = calendarDay(*req.IssueDate)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		day := calendarDay(*req.DueDate)
		if day.Before(issueDate) {
			return nil, nil, apperrors.NewValidationError("due date cannot be before the issue date")
		}
		dueDate = &day
	}

	quote, err := s.pricing.Quote(ctx, req.QuoteRequest())
	if err != nil {
		return nil, nil, err
	}

	invoiceID := uuid.NewString()
	invoice := domain.Invoice{
		InvoiceID:          invoiceID,
		Number:             invoiceNumber(issueDate, invoiceID),
		ClientName:         req.ClientName,
		DocumentCurrencyID: quote.DocumentCurrencyID,
		Status:             domain.InvoiceDraft,
		IssueDate:          issueDate,
		DueDate:            dueDate,
		Notes:              req.Notes,
		Lines:              documentLines(quote),
		Total:              quote.Total,
		Degraded:           quote.Degraded(),
		AuditFields:        domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoiceID))
		return nil, nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoiceID),
		slog.String("number", invoice.Number),
		slog.String("total", invoice.Total.String()),
		slog.Bool("degraded", invoice.Degraded))
	return &invoice, quote.Warnings, nil
}

// calendarDay drops the time of day; issue and due dates are stored as DATE columns.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// invoiceNumber derives a human readable number such as INV-20250301-1A2B3C4D.
func invoiceNumber(issueDate time.Time, invoiceID string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(invoiceID, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("INV-%s-%s", issueDate.Format("20060102"), suffix)
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices returns one page of invoices, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultInvoicePageSize
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, params.Status, limit, params.NextToken)
	if err != nil {
		if apperrors.StatusCode(err) >= 500 {
			s.LogError(ctx, err, "Failed to list invoices")
		}
		return nil, err
	}

	resp := &dto.ListInvoicesResponse{
		Invoices:  make([]dto.InvoiceResponse, len(invoices)),
		NextToken: nextToken,
	}
	for i := range invoices {
		resp.Invoices[i] = dto.ToInvoiceResponse(&invoices[i])
	}
	return resp, nil
}

// UpdateInvoiceStatus moves an invoice along DRAFT -> ISSUED -> PAID, or to CANCELLED
// from DRAFT or ISSUED.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, req dto.UpdateInvoiceStatusRequest, userID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	next := domain.InvoiceStatus(req.Status)
	if !invoice.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("invoice %s cannot move from %s to %s", invoice.Number, invoice.Status, next))
	}

	now := s.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, next, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	s.LogInfo(ctx, "Invoice status changed",
		slog.String("invoice_id", invoiceID),
		slog.String("from", string(invoice.Status)),
		slog.String("to", string(next)))
	invoice.Status = next
	invoice.Touch(userID, now)
	return invoice, nil
}
