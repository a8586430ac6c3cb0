package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo        CurrencyRepositoryFacade
	ExchangeRateRepo    ExchangeRateRepositoryFacade
	CatalogItemRepo     CatalogItemRepositoryFacade
	InvoiceRepo         InvoiceRepositoryFacade
	PosOrderRepo        PosOrderRepositoryFacade
	PricingSnapshotRepo PricingSnapshotReader
	// SnapshotCache is optional; nil disables caching.
	SnapshotCache SnapshotCache
}
