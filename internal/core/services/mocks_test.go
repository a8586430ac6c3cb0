package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

func (m *MockCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyID, userID string, now time.Time) error {
	return m.Called(ctx, currencyID, userID, now).Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	return m.Called(ctx, currencyID).Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromID, toID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromID, toID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, fromID, toID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, fromID, toID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	return m.Called(ctx, rate).Error(0)
}

func (m *MockExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	return m.Called(ctx, rateID).Error(0)
}

// --- Mock CatalogItemRepository ---
type MockCatalogItemRepository struct {
	mock.Mock
}

func (m *MockCatalogItemRepository) FindCatalogItemByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) FindCatalogItemsByIDs(ctx context.Context, ids []string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) ListCatalogItems(ctx context.Context, kind string, includeInactive bool) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, kind, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogItemRepository) UpdateCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	return m.Called(ctx, item).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), token, args.Error(2)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus, userID string, now time.Time) error {
	return m.Called(ctx, id, status, userID, now).Error(0)
}

// --- Mock PosOrderRepository ---
type MockPosOrderRepository struct {
	mock.Mock
}

func (m *MockPosOrderRepository) FindPosOrderByID(ctx context.Context, id string) (*domain.PosOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PosOrder), args.Error(1)
}

func (m *MockPosOrderRepository) SavePosOrder(ctx context.Context, order domain.PosOrder) error {
	return m.Called(ctx, order).Error(0)
}

// --- Mock PricingSnapshotReader ---
type MockPricingSnapshotReader struct {
	mock.Mock
}

func (m *MockPricingSnapshotReader) LoadPricingSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PricingSnapshot), args.Error(1)
}

// --- Mock SnapshotCache ---
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context) (*domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingSnapshot), args.Error(1)
}

func (m *MockSnapshotCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSnapshotCache) Set(ctx context.Context, snapshot domain.PricingSnapshot, generation int64) (bool, error) {
	args := m.Called(ctx, snapshot, generation)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock PricingSvc ---
type MockPricingSvc struct {
	mock.Mock
}

func (m *MockPricingSvc) LoadSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PricingSnapshot), args.Error(1)
}

func (m *MockPricingSvc) RefreshSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PricingSnapshot), args.Error(1)
}

func (m *MockPricingSvc) Convert(ctx context.Context, req dto.ConvertPriceRequest) (dto.ConvertPriceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ConvertPriceResponse), args.Error(1)
}

func (m *MockPricingSvc) Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}
