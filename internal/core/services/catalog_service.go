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
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogItemRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo portsrepo.CatalogItemRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: repo}
}

func validateCatalogAmounts(unitPrice, vatRate decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return apperrors.NewValidationError("unit price cannot be negative")
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(1)) {
		return apperrors.NewValidationError("VAT rate must be a fraction between 0 and 1")
	}
	return nil
}

func (s *catalogService) CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest, creatorUserID string) (*domain.CatalogItem, error) {
	kind := domain.CatalogItemKind(req.Kind)
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown catalog item kind '%s'", req.Kind))
	}
	if err := validateCatalogAmounts(req.UnitPrice, req.VATRate); err != nil {
		return nil, err
	}

	item := domain.CatalogItem{
		CatalogItemID: uuid.NewString(),
		Kind:          kind,
		Name:          req.Name,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		VATRate:       req.VATRate,
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.catalogRepo.SaveCatalogItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save catalog item", slog.String("name", item.Name))
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	s.LogInfo(ctx, "Catalog item created", slog.String("catalog_item_id", item.CatalogItemID), slog.String("kind", string(kind)))
	return &item, nil
}

func (s *catalogService) GetCatalogItemByID(ctx context.Context, catalogItemID string) (*domain.CatalogItem, error) {
	item, err := s.catalogRepo.FindCatalogItemByID(ctx, catalogItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find catalog item", slog.String("catalog_item_id", catalogItemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) ListCatalogItems(ctx context.Context, params dto.ListCatalogItemsParams) ([]domain.CatalogItem, error) {
	items, err := s.catalogRepo.ListCatalogItems(ctx, params.Kind, params.IncludeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog items")
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	if items == nil {
		return []domain.CatalogItem{}, nil
	}
	return items, nil
}

func (s *catalogService) UpdateCatalogItem(ctx context.Context, catalogItemID string, req dto.UpdateCatalogItemRequest, userID string) (*domain.CatalogItem, error) {
	item, err := s.GetCatalogItemByID(ctx, catalogItemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.VATRate != nil {
		item.VATRate = *req.VATRate
	}
	if err := validateCatalogAmounts(item.UnitPrice, item.VATRate); err != nil {
		return nil, err
	}
	item.Touch(userID, s.Now())

	if err := s.catalogRepo.UpdateCatalogItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update catalog item", slog.String("catalog_item_id", catalogItemID))
		return nil, fmt.Errorf("failed to update catalog item: %w", err)
	}
	return item, nil
}

// DeactivateCatalogItem is idempotent: deactivating an inactive item is a no-op.
func (s *catalogService) DeactivateCatalogItem(ctx context.Context, catalogItemID string, userID string) error {
	item, err := s.GetCatalogItemByID(ctx, catalogItemID)
	if err != nil {
		return err
	}
	if !item.IsActive {
		return nil
	}

	item.IsActive = false
	item.Touch(userID, s.Now())
	if err := s.catalogRepo.UpdateCatalogItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to deactivate catalog item", slog.String("catalog_item_id", catalogItemID))
		return fmt.Errorf("failed to deactivate catalog item: %w", err)
	}
	s.LogInfo(ctx, "Catalog item deactivated", slog.String("catalog_item_id", catalogItemID))
	return nil
}
