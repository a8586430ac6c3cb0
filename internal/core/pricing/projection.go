package pricing

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectCatalogPrice expresses a catalog item's home-currency unit price in the
// document currency. Invoice editing and the POS cart both price catalog items here.
func ProjectCatalogPrice(item domain.CatalogItem, homeCurrencyID, documentCurrencyID string, rates []domain.ExchangeRate) (decimal.Decimal, *Warning) {
	return ConvertPrice(item.UnitPrice, homeCurrencyID, documentCurrencyID, rates)
}
