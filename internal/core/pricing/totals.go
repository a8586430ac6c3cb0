package pricing

import (
	"fmt"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineTotal computes quantity * unitPrice * (1 + vatRate). Missing fields count as zero,
// so a line without a quantity totals zero rather than failing.
func LineTotal(item domain.LineItem) decimal.Decimal {
	gross := item.QuantityOrZero().Mul(item.UnitPriceOrZero())
	return gross.Mul(one.Add(item.VATRateOrZero()))
}

// AggregateTotal sums LineTotal over items. All items must already share one currency.
func AggregateTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}

// ValidateLineItem rejects negative quantities or prices and VAT rates outside [0,1].
// Missing values are accepted; they are priced as zero.
func ValidateLineItem(item domain.LineItem) error {
	if item.Quantity.Valid && item.Quantity.Decimal.IsNegative() {
		return fmt.Errorf("%w: quantity %s is negative", ErrInvalidLineItem, item.Quantity.Decimal)
	}
	if item.UnitPrice.Valid && item.UnitPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w: unit price %s is negative", ErrInvalidLineItem, item.UnitPrice.Decimal)
	}
	if item.VATRate.Valid && (item.VATRate.Decimal.IsNegative() || item.VATRate.Decimal.GreaterThan(one)) {
		return fmt.Errorf("%w: VAT rate %s is outside [0,1]", ErrInvalidLineItem, item.VATRate.Decimal)
	}
	return nil
}
