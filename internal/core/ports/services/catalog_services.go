package services

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
)

// CatalogSvcFacade manages products and services offered for sale.
type CatalogSvcFacade interface {
	CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest, creatorUserID string) (*domain.CatalogItem, error)
	GetCatalogItemByID(ctx context.Context, catalogItemID string) (*domain.CatalogItem, error)
	ListCatalogItems(ctx context.Context, params dto.ListCatalogItemsParams) ([]domain.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, catalogItemID string, req dto.UpdateCatalogItemRequest, userID string) (*domain.CatalogItem, error)

	// DeactivateCatalogItem hides an item from new documents; existing lines keep it.
	DeactivateCatalogItem(ctx context.Context, catalogItemID string, userID string) error
}
