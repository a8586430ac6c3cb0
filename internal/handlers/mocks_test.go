package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) SetDefaultCurrency(ctx context.Context, currencyID string, userID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	return m.Called(ctx, currencyID).Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, exchangeRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ResolveRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (dto.ResolveRateResponse, error) {
	args := m.Called(ctx, fromCurrencyID, toCurrencyID)
	return args.Get(0).(dto.ResolveRateResponse), args.Error(1)
}
func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) DeleteExchangeRate(ctx context.Context, exchangeRateID string) error {
	return m.Called(ctx, exchangeRateID).Error(0)
}

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest, creatorUserID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}
func (m *MockCatalogService) GetCatalogItemByID(ctx context.Context, catalogItemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, catalogItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}
func (m *MockCatalogService) ListCatalogItems(ctx context.Context, params dto.ListCatalogItemsParams) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}
func (m *MockCatalogService) UpdateCatalogItem(ctx context.Context, catalogItemID string, req dto.UpdateCatalogItemRequest, userID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, catalogItemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}
func (m *MockCatalogService) DeactivateCatalogItem(ctx context.Context, catalogItemID string, userID string) error {
	return m.Called(ctx, catalogItemID, userID).Error(0)
}

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) LoadSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PricingSnapshot), args.Error(1)
}
func (m *MockPricingService) RefreshSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PricingSnapshot), args.Error(1)
}
func (m *MockPricingService) Convert(ctx context.Context, req dto.ConvertPriceRequest) (dto.ConvertPriceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ConvertPriceResponse), args.Error(1)
}
func (m *MockPricingService) Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, []pricing.Warning, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]pricing.Warning)
	return args.Get(0).(*domain.Invoice), warnings, args.Error(2)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, req dto.UpdateInvoiceStatusRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock PosService ---
type MockPosService struct {
	mock.Mock
}

func (m *MockPosService) CreatePosOrder(ctx context.Context, req dto.CreatePosOrderRequest, creatorUserID string) (*domain.PosOrder, []pricing.Warning, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]pricing.Warning)
	return args.Get(0).(*domain.PosOrder), warnings, args.Error(2)
}
func (m *MockPosService) GetPosOrderByID(ctx context.Context, posOrderID string) (*domain.PosOrder, error) {
	args := m.Called(ctx, posOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PosOrder), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.AuthSvcFacade         = (*MockAuthService)(nil)
	_ portssvc.CurrencySvcFacade     = (*MockCurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
	_ portssvc.CatalogSvcFacade      = (*MockCatalogService)(nil)
	_ portssvc.PricingSvc            = (*MockPricingService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*MockInvoiceService)(nil)
	_ portssvc.PosSvcFacade          = (*MockPosService)(nil)
)
