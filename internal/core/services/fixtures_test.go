package services_test

import (
	"testing"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	eurID    = "6f1c1c3e-0000-4000-8000-000000000001"
	bamID    = "6f1c1c3e-0000-4000-8000-000000000002"
	usdID    = "6f1c1c3e-0000-4000-8000-000000000003"
	widgetID = "7a2d2d4f-0000-4000-8000-000000000001"
	userID   = "admin"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got.String())
}

func testCurrencies() []domain.Currency {
	return []domain.Currency{
		{CurrencyID: eurID, Code: "EUR", Symbol: "€", Precision: 2, IsDefault: true},
		{CurrencyID: bamID, Code: "BAM", Symbol: "KM", Precision: 2},
		{CurrencyID: usdID, Code: "USD", Symbol: "$", Precision: 2},
	}
}

func testRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{ExchangeRateID: "rate-1", FromCurrencyID: eurID, ToCurrencyID: bamID, Rate: dec("1.95583")},
	}
}

func testSnapshot() domain.PricingSnapshot {
	return domain.PricingSnapshot{Currencies: testCurrencies(), Rates: testRates()}
}

func widget() domain.CatalogItem {
	return domain.CatalogItem{
		CatalogItemID: widgetID,
		Kind:          domain.KindProduct,
		Name:          "Widget",
		UnitPrice:     dec("10"),
		VATRate:       dec("0.17"),
		IsActive:      true,
	}
}

func strPtr(s string) *string { return &s }
