package dto

import (
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCatalogItemRequest defines the data needed to add a product or service.
// UnitPrice is in the home (default) currency.
type CreateCatalogItemRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=PRODUCT SERVICE"`
	Name        string          `json:"name" binding:"required,nospaces,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	VATRate     decimal.Decimal `json:"vatRate" binding:"gte=0,lte=1"`
}

// UpdateCatalogItemRequest defines the mutable fields of a catalog item.
type UpdateCatalogItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" binding:"omitempty,gte=0"`
	VATRate     *decimal.Decimal `json:"vatRate" binding:"omitempty,gte=0,lte=1"`
}

// ListCatalogItemsParams filters the catalog listing.
type ListCatalogItemsParams struct {
	Kind            string `form:"kind" binding:"omitempty,oneof=PRODUCT SERVICE"`
	IncludeInactive bool   `form:"includeInactive"`
}

// CatalogItemResponse defines the data returned for a catalog item.
type CatalogItemResponse struct {
	CatalogItemID string          `json:"catalogItemID"`
	Kind          string          `json:"kind"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	VATRate       decimal.Decimal `json:"vatRate"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToCatalogItemResponse converts a domain.CatalogItem to its response DTO.
func ToCatalogItemResponse(item *domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		CatalogItemID: item.CatalogItemID,
		Kind:          string(item.Kind),
		Name:          item.Name,
		Description:   item.Description,
		UnitPrice:     item.UnitPrice,
		VATRate:       item.VATRate,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
		CreatedBy:     item.CreatedBy,
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToListCatalogItemResponse converts a slice of catalog items.
func ToListCatalogItemResponse(items []domain.CatalogItem) []CatalogItemResponse {
	res := make([]CatalogItemResponse, len(items))
	for i := range items {
		res[i] = ToCatalogItemResponse(&items[i])
	}
	return res
}
