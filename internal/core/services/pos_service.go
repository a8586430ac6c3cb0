package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/google/uuid"
)

type posService struct {
	BaseService
	posRepo portsrepo.PosOrderRepositoryFacade
	pricing portssvc.PricingSvc
}

// NewPosService creates a new point-of-sale service.
func NewPosService(repo portsrepo.PosOrderRepositoryFacade, pricingSvc portssvc.PricingSvc) portssvc.PosSvcFacade {
	return &posService{posRepo: repo, pricing: pricingSvc}
}

// CreatePosOrder prices the cart and records the sale.
func (s *posService) CreatePosOrder(ctx context.Context, req dto.CreatePosOrderRequest, creatorUserID string) (*domain.PosOrder, []pricing.Warning, error) {
	method := domain.PaymentMethod(req.PaymentMethod)
	if method != domain.PaymentCash && method != domain.PaymentCard {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("unknown payment method '%s'", req.PaymentMethod))
	}

	quote, err := s.pricing.Quote(ctx, req.QuoteRequest())
	if err != nil {
		return nil, nil, err
	}

	order := domain.PosOrder{
		PosOrderID:         uuid.NewString(),
		DocumentCurrencyID: quote.DocumentCurrencyID,
		PaymentMethod:      method,
		Lines:              documentLines(quote),
		Total:              quote.Total,
		Degraded:           quote.Degraded(),
		AuditFields:        domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.posRepo.SavePosOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save POS order", slog.String("pos_order_id", order.PosOrderID))
		return nil, nil, fmt.Errorf("failed to create POS order: %w", err)
	}

	s.LogInfo(ctx, "POS order created",
		slog.String("pos_order_id", order.PosOrderID),
		slog.String("payment_method", string(method)),
		slog.String("total", order.Total.String()))
	return &order, quote.Warnings, nil
}

func (s *posService) GetPosOrderByID(ctx context.Context, posOrderID string) (*domain.PosOrder, error) {
	order, err := s.posRepo.FindPosOrderByID(ctx, posOrderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find POS order", slog.String("pos_order_id", posOrderID))
		}
		return nil, err
	}
	return order, nil
}
