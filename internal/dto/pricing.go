package dto

import (
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertPriceRequest asks for a single amount to be converted between two currencies.
type ConvertPriceRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"gte=0"`
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required"`
}

// ConvertPriceResponse is the converted amount. When Degraded is set the amount was
// returned unconverted because no rate exists for the pair.
type ConvertPriceResponse struct {
	Amount          decimal.Decimal  `json:"amount"`
	ConvertedAmount decimal.Decimal  `json:"convertedAmount"`
	FromCurrencyID  string           `json:"fromCurrencyID"`
	ToCurrencyID    string           `json:"toCurrencyID"`
	Degraded        bool             `json:"degraded"`
	Warning         *WarningResponse `json:"warning,omitempty"`
}

// QuoteLineRequest is either a catalog line (CatalogItemID set, price taken from the
// catalog) or a custom line whose UnitPrice is already in the document currency.
// Missing numeric fields are priced as zero.
type QuoteLineRequest struct {
	CatalogItemID *string             `json:"catalogItemID" binding:"omitempty,uuid"`
	Description   string              `json:"description" binding:"required_without=CatalogItemID,max=500"`
	Quantity      decimal.NullDecimal `json:"quantity"`
	UnitPrice     decimal.NullDecimal `json:"unitPrice"`
	VATRate       decimal.NullDecimal `json:"vatRate"`
}

// IsCatalogLine reports whether the line references a catalog item.
func (l QuoteLineRequest) IsCatalogLine() bool {
	return l.CatalogItemID != nil && *l.CatalogItemID != ""
}

// ToLineItem converts a custom line to a domain line item.
func (l QuoteLineRequest) ToLineItem() domain.LineItem {
	return domain.LineItem{
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		VATRate:     l.VATRate,
	}
}

// QuoteRequest prices a set of lines in a document currency.
type QuoteRequest struct {
	DocumentCurrencyID string             `json:"documentCurrencyID" binding:"required"`
	Lines              []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// WarningResponse describes a non-fatal pricing condition.
type WarningResponse struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	FromCurrencyID string `json:"fromCurrencyID"`
	ToCurrencyID   string `json:"toCurrencyID"`
	Line           *int   `json:"line,omitempty"`
}

// QuoteLineResponse is one priced line, amounts in the document currency.
type QuoteLineResponse struct {
	CatalogItemID   *string         `json:"catalogItemID,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	SourceUnitPrice decimal.Decimal `json:"sourceUnitPrice"`
	AppliedRate     decimal.Decimal `json:"appliedRate"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	VATRate         decimal.Decimal `json:"vatRate"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
	Degraded        bool            `json:"degraded"`
}

// QuoteResponse is a priced document that has not been persisted.
type QuoteResponse struct {
	DocumentCurrencyID string              `json:"documentCurrencyID"`
	HomeCurrencyID     string              `json:"homeCurrencyID"`
	Lines              []QuoteLineResponse `json:"lines"`
	Total              decimal.Decimal     `json:"total"`
	FormattedTotal     string              `json:"formattedTotal"`
	Degraded           bool                `json:"degraded"`
	Warnings           []WarningResponse   `json:"warnings"`
}

// ToWarningResponse converts a pricing warning.
func ToWarningResponse(w *pricing.Warning) WarningResponse {
	resp := WarningResponse{
		Code:           w.Code,
		Message:        w.Message(),
		FromCurrencyID: w.FromCurrencyID,
		ToCurrencyID:   w.ToCurrencyID,
	}
	if w.Line >= 0 {
		line := w.Line
		resp.Line = &line
	}
	return resp
}

// ToWarningResponses converts a slice of pricing warnings; never returns nil.
func ToWarningResponses(warnings []pricing.Warning) []WarningResponse {
	res := make([]WarningResponse, len(warnings))
	for i := range warnings {
		res[i] = ToWarningResponse(&warnings[i])
	}
	return res
}

// ToQuoteResponse converts a pricing quote.
func ToQuoteResponse(q *pricing.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = QuoteLineResponse{
			CatalogItemID:   l.CatalogItemID,
			Description:     l.Item.Description,
			Quantity:        l.Item.QuantityOrZero(),
			SourceUnitPrice: l.SourceUnitPrice,
			AppliedRate:     l.AppliedRate,
			UnitPrice:       l.Item.UnitPriceOrZero(),
			VATRate:         l.Item.VATRateOrZero(),
			LineTotal:       l.LineTotal,
			Degraded:        l.Degraded,
		}
	}
	formatted := q.Total.String()
	if cur, ok := q.Context().Currency(q.DocumentCurrencyID); ok {
		formatted = utils.FormatAmount(q.Total, cur)
	}
	return QuoteResponse{
		DocumentCurrencyID: q.DocumentCurrencyID,
		HomeCurrencyID:     q.HomeCurrencyID,
		Lines:              lines,
		Total:              q.Total,
		FormattedTotal:     formatted,
		Degraded:           q.Degraded(),
		Warnings:           ToWarningResponses(q.Warnings),
	}
}
