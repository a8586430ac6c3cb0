package mapping

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/models"
)

// ToModelCatalogItem converts a domain CatalogItem to a model CatalogItem
func ToModelCatalogItem(d domain.CatalogItem) models.CatalogItem {
	return models.CatalogItem{
		CatalogItemID: d.CatalogItemID,
		Kind:          string(d.Kind),
		Name:          d.Name,
		Description:   d.Description,
		UnitPrice:     d.UnitPrice,
		VATRate:       d.VATRate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogItem converts a model CatalogItem to a domain CatalogItem
func ToDomainCatalogItem(m models.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		CatalogItemID: m.CatalogItemID,
		Kind:          domain.CatalogItemKind(m.Kind),
		Name:          m.Name,
		Description:   m.Description,
		UnitPrice:     m.UnitPrice,
		VATRate:       m.VATRate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalogItemSlice converts a slice of model CatalogItems.
func ToDomainCatalogItemSlice(ms []models.CatalogItem) []domain.CatalogItem {
	ds := make([]domain.CatalogItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogItem(m)
	}
	return ds
}
