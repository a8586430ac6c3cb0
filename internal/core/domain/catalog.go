package domain

import "github.com/shopspring/decimal"

// CatalogItemKind distinguishes sellable goods from billable services.
type CatalogItemKind string

const (
	KindProduct CatalogItemKind = "PRODUCT"
	KindService CatalogItemKind = "SERVICE"
)

// IsValid reports whether k is a known kind.
func (k CatalogItemKind) IsValid() bool {
	return k == KindProduct || k == KindService
}

// CatalogItem is a product or service. UnitPrice is denominated in the home currency
// (the currency flagged IsDefault); the item itself carries no currency.
type CatalogItem struct {
	CatalogItemID string          `json:"catalogItemID"`
	Kind          CatalogItemKind `json:"kind"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice"` // >= 0, home currency
	VATRate       decimal.Decimal `json:"vatRate"`   // fraction in [0,1]
	IsActive      bool            `json:"isActive"`
	AuditFields
}
