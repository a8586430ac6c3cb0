package dto

import (
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required,uuid"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required,uuid,nefield=FromCurrencyID"`
	Rate           decimal.Decimal `json:"rate" binding:"required,gt=0"`
}

// ListExchangeRatesParams filters the exchange rate listing.
type ListExchangeRatesParams struct {
	FromCurrencyID string `form:"from" binding:"omitempty,uuid"`
	ToCurrencyID   string `form:"to" binding:"omitempty,uuid"`
}

// ResolveRateParams are the query parameters of the rate resolution endpoint.
type ResolveRateParams struct {
	FromCurrencyID string `form:"from" binding:"required"`
	ToCurrencyID   string `form:"to" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ResolveRateResponse reports the factor the pricing engine would apply for a pair.
// Found is false when the pair has no entry; Rate is then zero.
type ResolveRateResponse struct {
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	Found          bool            `json:"found"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrencyID: rate.FromCurrencyID,
		ToCurrencyID:   rate.ToCurrencyID,
		Rate:           rate.Rate,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
