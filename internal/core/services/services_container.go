package services

import (
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// pricing first, the rate, invoice and POS services price through it
	container.Pricing = NewPricingService(repos.PricingSnapshotRepo, repos.CatalogItemRepo, repos.SnapshotCache)

	container.Auth = NewAuthService(cfg)
	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.SnapshotCache)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo, container.Pricing, repos.SnapshotCache)
	container.Catalog = NewCatalogService(repos.CatalogItemRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Pricing)
	container.Pos = NewPosService(repos.PosOrderRepo, container.Pricing)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.CatalogSvcFacade      = (*catalogService)(nil)
	_ portssvc.PricingSvc            = (*pricingService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*invoiceService)(nil)
	_ portssvc.PosSvcFacade          = (*posService)(nil)
)
