package services

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/google/uuid"
)

// documentLines freezes the priced lines of a quote so that later rate changes do not
// alter a stored document.
func documentLines(q *pricing.Quote) []domain.DocumentLine {
	lines := make([]domain.DocumentLine, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = domain.DocumentLine{
			LineID:        uuid.NewString(),
			Position:      i + 1,
			CatalogItemID: l.CatalogItemID,
			Description:   l.Item.Description,
			Quantity:      l.Item.QuantityOrZero(),
			UnitPrice:     l.Item.UnitPriceOrZero(),
			VATRate:       l.Item.VATRateOrZero(),
			LineTotal:     l.LineTotal,
			Degraded:      l.Degraded,
		}
	}
	return lines
}
