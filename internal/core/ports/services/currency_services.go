package services

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency changes the display attributes of a currency.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error)

	// SetDefaultCurrency makes currencyID the home currency of the catalog.
	SetDefaultCurrency(ctx context.Context, currencyID string, userID string) (*domain.Currency, error)

	// DeleteCurrency removes a currency that is neither default nor referenced.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRateByID retrieves an exchange rate by its ID.
	GetExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves the rate table, optionally filtered by pair members.
	ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error)

	// ResolveRate reports the factor pricing would apply from one currency to another.
	ResolveRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (dto.ResolveRateResponse, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes an exchange rate.
	DeleteExchangeRate(ctx context.Context, exchangeRateID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
