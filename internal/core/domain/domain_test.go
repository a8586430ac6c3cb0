package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_OrZero(t *testing.T) {
	item := domain.LineItem{Quantity: decimal.NewNullDecimal(decimal.NewFromInt(4))}

	assert.True(t, item.QuantityOrZero().Equal(decimal.NewFromInt(4)))
	assert.True(t, item.UnitPriceOrZero().IsZero())
	assert.True(t, item.VATRateOrZero().IsZero())
}

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.InvoiceStatus
		want     bool
	}{
		{domain.InvoiceDraft, domain.InvoiceIssued, true},
		{domain.InvoiceDraft, domain.InvoiceCancelled, true},
		{domain.InvoiceDraft, domain.InvoicePaid, false},
		{domain.InvoiceIssued, domain.InvoicePaid, true},
		{domain.InvoiceIssued, domain.InvoiceDraft, false},
		{domain.InvoicePaid, domain.InvoiceCancelled, false},
		{domain.InvoiceCancelled, domain.InvoiceIssued, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPricingSnapshot_Lookups(t *testing.T) {
	snap := domain.PricingSnapshot{Currencies: []domain.Currency{
		{CurrencyID: "a", Code: "EUR"},
		{CurrencyID: "b", Code: "BAM", IsDefault: true},
	}}

	def, ok := snap.DefaultCurrency()
	assert.True(t, ok)
	assert.Equal(t, "BAM", def.Code)

	cur, ok := snap.FindCurrency("a")
	assert.True(t, ok)
	assert.Equal(t, "EUR", cur.Code)

	_, ok = snap.FindCurrency("zzz")
	assert.False(t, ok)

	_, ok = domain.PricingSnapshot{}.DefaultCurrency()
	assert.False(t, ok)
}

func TestAuditFields(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	audit := domain.NewAuditFields("user-1", created)
	assert.Equal(t, "user-1", audit.CreatedBy)
	assert.Equal(t, created, audit.LastUpdatedAt)

	later := created.Add(time.Hour)
	audit.Touch("user-2", later)
	assert.Equal(t, "user-1", audit.CreatedBy)
	assert.Equal(t, "user-2", audit.LastUpdatedBy)
	assert.Equal(t, later, audit.LastUpdatedAt)
	assert.Equal(t, created, audit.CreatedAt)
}

func TestCatalogItemKind_IsValid(t *testing.T) {
	assert.True(t, domain.KindProduct.IsValid())
	assert.True(t, domain.KindService.IsValid())
	assert.False(t, domain.CatalogItemKind("BUNDLE").IsValid())
}
