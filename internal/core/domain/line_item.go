package domain

import "github.com/shopspring/decimal"

// LineItem is one priced line of an invoice or cart. UnitPrice is already expressed in
// the document currency. Numeric fields are nullable so partially filled lines can be
// priced; a missing value counts as zero.
type LineItem struct {
	Description string              `json:"description"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unitPrice"`
	VATRate     decimal.NullDecimal `json:"vatRate"`
}

// NewLineItem builds a fully populated line item.
func NewLineItem(description string, quantity, unitPrice, vatRate decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    decimal.NewNullDecimal(quantity),
		UnitPrice:   decimal.NewNullDecimal(unitPrice),
		VATRate:     decimal.NewNullDecimal(vatRate),
	}
}

// QuantityOrZero returns the quantity, or zero when it is missing.
func (l LineItem) QuantityOrZero() decimal.Decimal { return orZero(l.Quantity) }

// UnitPriceOrZero returns the unit price, or zero when it is missing.
func (l LineItem) UnitPriceOrZero() decimal.Decimal { return orZero(l.UnitPrice) }

// VATRateOrZero returns the VAT rate, or zero when it is missing.
func (l LineItem) VATRateOrZero() decimal.Decimal { return orZero(l.VATRate) }

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
