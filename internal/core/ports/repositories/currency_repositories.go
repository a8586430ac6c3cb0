package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves the whole currency directory ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. A currency saved with IsDefault clears the
	// flag on every other row in the same transaction.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency persists symbol, name and precision changes.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// SetDefaultCurrency flags currencyID as the home currency and clears all others.
	SetDefaultCurrency(ctx context.Context, currencyID, userID string, now time.Time) error

	// DeleteCurrency removes a currency. Returns apperrors.ErrConflict when it is still referenced.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
