package utils

import (
	"testing"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(amount, domain.Currency{Precision: 2}))
	assert.Equal(t, "12", FormatWithCurrencyPrecision(amount, domain.Currency{Precision: 0}))
	assert.Equal(t, "12.3456000", FormatWithPrecision(amount, 7))
	assert.Equal(t, "12", FormatWithPrecision(amount, -1))
}

func TestFormatAmount(t *testing.T) {
	total := decimal.RequireFromString("68.649633")
	assert.Equal(t, "KM 68.65", FormatAmount(total, domain.Currency{Code: "BAM", Symbol: "KM", Precision: 2}))
	assert.Equal(t, "BAM 68.65", FormatAmount(total, domain.Currency{Code: "BAM", Precision: 2}))
	assert.Equal(t, "68.6", FormatAmount(total, domain.Currency{Precision: 1}))
	assert.Equal(t, "€ 20.00", FormatAmount(decimal.NewFromInt(20), domain.Currency{Code: "EUR", Symbol: "€", Precision: 2}))
}
