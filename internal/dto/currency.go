package dto

import (
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code      string `json:"code" binding:"required,uppercase,len=3,iso4217"`
	Symbol    string `json:"symbol" binding:"required,max=8"`
	Name      string `json:"name" binding:"required,nospaces,max=100"`
	Precision *int   `json:"precision" binding:"omitempty,gte=0,lte=8"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateCurrencyRequest defines the mutable fields of a currency. Nil fields are left untouched.
type UpdateCurrencyRequest struct {
	Symbol    *string `json:"symbol" binding:"omitempty,min=1,max=8"`
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Precision *int    `json:"precision" binding:"omitempty,gte=0,lte=8"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    string    `json:"currencyID"`
	Code          string    `json:"code"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Precision     int       `json:"precision"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Code:          curr.Code,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		Precision:     curr.Precision,
		IsDefault:     curr.IsDefault,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
