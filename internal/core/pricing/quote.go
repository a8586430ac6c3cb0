package pricing

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricedLine is a line item whose unit price is expressed in the document currency.
type PricedLine struct {
	Item          domain.LineItem
	CatalogItemID *string
	// SourceUnitPrice is the price before projection: home currency for catalog lines,
	// equal to the unit price for custom lines.
	SourceUnitPrice decimal.Decimal
	// AppliedRate is the factor that turned SourceUnitPrice into the unit price. It is 1
	// for custom lines, identity projections and degraded lines.
	AppliedRate decimal.Decimal
	LineTotal   decimal.Decimal
	Degraded    bool
}

// Quote accumulates priced lines of one document against a single Context.
type Quote struct {
	DocumentCurrencyID string
	HomeCurrencyID     string
	Lines              []PricedLine
	Total              decimal.Decimal
	Warnings           []Warning

	ctx Context
}

// NewQuote starts an empty quote in the context's document currency.
func (c Context) NewQuote() *Quote {
	return &Quote{
		DocumentCurrencyID: c.DocumentCurrencyID,
		HomeCurrencyID:     c.HomeCurrencyID,
		Total:              decimal.Zero,
		ctx:                c,
	}
}

// AddCatalogItem prices quantity units of a catalog item, projecting its unit price into
// the document currency. A missing rate degrades the line instead of failing it.
func (q *Quote) AddCatalogItem(item domain.CatalogItem, quantity decimal.NullDecimal) PricedLine {
	unitPrice, warn := ProjectCatalogPrice(item, q.ctx.HomeCurrencyID, q.ctx.DocumentCurrencyID, q.ctx.Rates)
	applied, found := ResolveRate(q.ctx.HomeCurrencyID, q.ctx.DocumentCurrencyID, q.ctx.Rates)
	if !found {
		applied = decimal.NewFromInt(1)
	}
	id := item.CatalogItemID
	line := domain.LineItem{
		Description: item.Name,
		Quantity:    quantity,
		UnitPrice:   decimal.NewNullDecimal(unitPrice),
		VATRate:     decimal.NewNullDecimal(item.VATRate),
	}
	priced := PricedLine{
		Item:            line,
		CatalogItemID:   &id,
		SourceUnitPrice: item.UnitPrice,
		AppliedRate:     applied,
		LineTotal:       LineTotal(line),
		Degraded:        warn != nil,
	}
	if warn != nil {
		warn.Line = len(q.Lines)
		q.Warnings = append(q.Warnings, *warn)
	}
	return q.append(priced)
}

// AddCustomLine prices a free-form line. Its unit price is taken as already being in the
// document currency.
func (q *Quote) AddCustomLine(item domain.LineItem) PricedLine {
	return q.append(PricedLine{
		Item:            item,
		SourceUnitPrice: item.UnitPriceOrZero(),
		AppliedRate:     decimal.NewFromInt(1),
		LineTotal:       LineTotal(item),
	})
}

func (q *Quote) append(line PricedLine) PricedLine {
	q.Lines = append(q.Lines, line)
	q.Total = q.Total.Add(line.LineTotal)
	return line
}

// Items returns the priced line items in document currency.
func (q *Quote) Items() []domain.LineItem {
	items := make([]domain.LineItem, len(q.Lines))
	for i, l := range q.Lines {
		items[i] = l.Item
	}
	return items
}

// Degraded reports whether any line was left unconverted.
func (q *Quote) Degraded() bool {
	return len(q.Warnings) > 0
}

// Context returns the pricing context the quote was built against.
func (q *Quote) Context() Context {
	return q.ctx
}
