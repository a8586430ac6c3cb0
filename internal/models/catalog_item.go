package models

import "github.com/shopspring/decimal"

// CatalogItem is a row of the catalog_items table.
type CatalogItem struct {
	CatalogItemID string          `db:"catalog_item_id"`
	Kind          string          `db:"kind"` // PRODUCT or SERVICE
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	UnitPrice     decimal.Decimal `db:"unit_price"` // home currency
	VATRate       decimal.Decimal `db:"vat_rate"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
