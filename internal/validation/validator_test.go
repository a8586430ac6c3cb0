package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name     string              `validate:"required,nospaces"`
	Price    decimal.Decimal     `validate:"gte=0"`
	Rate     decimal.Decimal     `validate:"required,gt=0"`
	VAT      *decimal.Decimal    `validate:"omitempty,gte=0,lte=1"`
	Quantity decimal.NullDecimal `validate:"omitempty,gte=0"`
	Code     string              `validate:"omitempty,iso4217"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func valid() priced {
	vat := decimal.RequireFromString("0.17")
	return priced{
		Name:     "Widget",
		Price:    decimal.Zero,
		Rate:     decimal.RequireFromString("1.95583"),
		VAT:      &vat,
		Quantity: decimal.NewNullDecimal(decimal.NewFromInt(3)),
		Code:     "BAM",
	}
}

func TestRegister_Decimals(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(valid()))

	tooHighVAT := decimal.RequireFromString("1.01")

	tests := []struct {
		name   string
		mutate func(p *priced)
		field  string
	}{
		{"negative price", func(p *priced) { p.Price = decimal.NewFromInt(-1) }, "Price"},
		{"zero rate", func(p *priced) { p.Rate = decimal.Zero }, "Rate"},
		{"vat above one", func(p *priced) { p.VAT = &tooHighVAT }, "VAT"},
		{"negative quantity", func(p *priced) { p.Quantity = decimal.NewNullDecimal(decimal.NewFromInt(-2)) }, "Quantity"},
		{"blank name", func(p *priced) { p.Name = "   " }, "Name"},
		{"unknown currency code", func(p *priced) { p.Code = "XYZ" }, "Code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := v.Struct(p)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestRegister_OptionalDecimalsMayBeAbsent(t *testing.T) {
	v := newValidator(t)
	p := valid()
	p.VAT = nil
	p.Quantity = decimal.NullDecimal{}
	assert.NoError(t, v.Struct(p))
}

func TestInitialize_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Initialize()
		Initialize()
	})
}
