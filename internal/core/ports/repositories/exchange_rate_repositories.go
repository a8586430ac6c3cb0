package repositories

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error)

	// FindExchangeRate retrieves the directed rate between two currency IDs.
	FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves the rate table. Empty filters match every currency.
	ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate. Returns apperrors.ErrDuplicate
	// when the pair already has one.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// DeleteExchangeRate removes an exchange rate.
	DeleteExchangeRate(ctx context.Context, exchangeRateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
