package repositories

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// CatalogItemReader defines read operations for the product and service catalog
type CatalogItemReader interface {
	FindCatalogItemByID(ctx context.Context, catalogItemID string) (*domain.CatalogItem, error)

	// FindCatalogItemsByIDs retrieves several items at once. Unknown IDs are skipped.
	FindCatalogItemsByIDs(ctx context.Context, catalogItemIDs []string) ([]domain.CatalogItem, error)

	// ListCatalogItems lists items ordered by name. An empty kind matches both kinds.
	ListCatalogItems(ctx context.Context, kind string, includeInactive bool) ([]domain.CatalogItem, error)
}

// CatalogItemWriter defines write operations for the catalog
type CatalogItemWriter interface {
	SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error
	UpdateCatalogItem(ctx context.Context, item domain.CatalogItem) error
}

// CatalogItemRepositoryFacade combines all catalog repository interfaces
type CatalogItemRepositoryFacade interface {
	CatalogItemReader
	CatalogItemWriter
}
