package pgsql

import (
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository. The snapshot cache is not
// database backed and is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:    newPgxExchangeRateRepository(dbPool),
		CatalogItemRepo:     newPgxCatalogItemRepository(dbPool),
		InvoiceRepo:         newPgxInvoiceRepository(dbPool),
		PosOrderRepo:        newPgxPosOrderRepository(dbPool),
		PricingSnapshotRepo: newPgxPricingSnapshotRepository(dbPool),
	}
}
