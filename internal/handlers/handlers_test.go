package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/SscSPs/bizhub_pricing/internal/handlers"
	"github.com/SscSPs/bizhub_pricing/internal/platform/config"
	"github.com/SscSPs/bizhub_pricing/internal/utils"
	"github.com/SscSPs/bizhub_pricing/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "bizhub-pricing-test"
	adminID    = "admin"

	eurID      = "5b0d8f0e-8a0b-4b8e-9f57-0c3c8f7c1a01"
	bamID      = "5b0d8f0e-8a0b-4b8e-9f57-0c3c8f7c1a02"
	usdID      = "5b0d8f0e-8a0b-4b8e-9f57-0c3c8f7c1a03"
	widgetID   = "9a1f3c2e-1d4b-4c6a-8e2f-3b5d7c9e1f00"
	invoiceID  = "c7e2a0d4-6b1f-4e8a-9c3d-2f5b7a9e1c11"
	posOrderID = "d8f3b1e5-7c2a-4f9b-8d4e-3a6c8b0f2d22"
)

type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	token    string
	auth     *MockAuthService
	currency *MockCurrencyService
	rates    *MockExchangeRateService
	catalog  *MockCatalogService
	pricing  *MockPricingService
	invoice  *MockInvoiceService
	pos      *MockPosService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	token, err := utils.GenerateJWT(adminID, testSecret, time.Hour, testIssuer, time.Now())
	s.Require().NoError(err)
	s.token = token
}

func testConfig(rateLimit string) *config.Config {
	return &config.Config{
		IsProduction:   true,
		JWTSecret:      testSecret,
		JWTIssuer:      testIssuer,
		LoginRateLimit: rateLimit,
	}
}

func (s *HandlerTestSuite) SetupTest() {
	s.auth = new(MockAuthService)
	s.currency = new(MockCurrencyService)
	s.rates = new(MockExchangeRateService)
	s.catalog = new(MockCatalogService)
	s.pricing = new(MockPricingService)
	s.invoice = new(MockInvoiceService)
	s.pos = new(MockPosService)

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, testConfig("100-M"), s.container()))
}

func (s *HandlerTestSuite) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:         s.auth,
		Currency:     s.currency,
		ExchangeRate: s.rates,
		Catalog:      s.catalog,
		Pricing:      s.pricing,
		Invoice:      s.invoice,
		Pos:          s.pos,
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.currency.AssertExpectations(s.T())
	s.rates.AssertExpectations(s.T())
	s.catalog.AssertExpectations(s.T())
	s.pricing.AssertExpectations(s.T())
	s.invoice.AssertExpectations(s.T())
	s.pos.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	return s.doWithToken(method, path, body, s.token)
}

func (s *HandlerTestSuite) doWithToken(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(s *HandlerTestSuite, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func eur() *domain.Currency {
	return &domain.Currency{CurrencyID: eurID, Code: "EUR", Symbol: "€", Name: "Euro", Precision: 2, IsDefault: true}
}

func snapshot() domain.PricingSnapshot {
	return domain.PricingSnapshot{
		Currencies: []domain.Currency{
			*eur(),
			{CurrencyID: bamID, Code: "BAM", Symbol: "KM", Name: "Convertible Mark", Precision: 2},
			{CurrencyID: usdID, Code: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
		},
		Rates: []domain.ExchangeRate{
			{ExchangeRateID: "r1", FromCurrencyID: eurID, ToCurrencyID: bamID, Rate: decimal.RequireFromString("1.95583")},
		},
	}
}

func widget() domain.CatalogItem {
	return domain.CatalogItem{
		CatalogItemID: widgetID,
		Kind:          domain.KindProduct,
		Name:          "Widget",
		UnitPrice:     decimal.NewFromInt(10),
		VATRate:       decimal.RequireFromString("0.17"),
		IsActive:      true,
	}
}

// --- health and auth ---

func (s *HandlerTestSuite) TestHealth() {
	w := s.doWithToken(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestProtectedRouteRequiresToken() {
	w := s.doWithToken(http.MethodGet, "/api/v1/currencies", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestLogin_Success() {
	expiresAt := time.Now().Add(time.Hour)
	s.auth.On("Login", mock.Anything, "admin", "secret").Return("signed.jwt.token", expiresAt, nil).Once()

	w := s.doWithToken(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "admin", Password: "secret"}, "")

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("signed.jwt.token", resp.Token)
	s.InDelta(3600, resp.ExpiresIn, 2)
	s.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (s *HandlerTestSuite) TestLogin_BadCredentials() {
	s.auth.On("Login", mock.Anything, "admin", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := s.doWithToken(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "admin", Password: "wrong"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestLogin_MissingPassword() {
	w := s.doWithToken(http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestLogin_RateLimited() {
	router := gin.New()
	s.Require().NoError(handlers.RegisterRoutes(router, testConfig("1-M"), s.container()))
	s.auth.On("Login", mock.Anything, "admin", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	send := func() int {
		raw, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	s.Equal(http.StatusUnauthorized, send())
	s.Equal(http.StatusTooManyRequests, send())
}

func (s *HandlerTestSuite) TestRegisterRoutes_InvalidRateLimit() {
	err := handlers.RegisterRoutes(gin.New(), testConfig("five per minute"), s.container())
	s.Error(err)
}

// --- currencies ---

func (s *HandlerTestSuite) TestCreateCurrency() {
	req := dto.CreateCurrencyRequest{Code: "EUR", Symbol: "€", Name: "Euro", IsDefault: true}
	s.currency.On("CreateCurrency", mock.Anything, req, adminID).Return(eur(), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/currencies", req)

	s.Equal(http.StatusCreated, w.Code)
	body := decodeBody(s, w)
	s.Equal(eurID, body["currencyID"])
	s.Equal(true, body["isDefault"])
}

func (s *HandlerTestSuite) TestCreateCurrency_BindingRejects() {
	tests := []struct {
		name string
		body string
	}{
		{"not iso 4217", `{"code":"XYZ","symbol":"X","name":"Nope"}`},
		{"lowercase code", `{"code":"eur","symbol":"€","name":"Euro"}`},
		{"blank name", `{"code":"EUR","symbol":"€","name":"   "}`},
		{"negative precision", `{"code":"EUR","symbol":"€","name":"Euro","precision":-1}`},
		{"malformed json", `{"code":`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/currencies", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestCreateCurrency_Duplicate() {
	s.currency.On("CreateCurrency", mock.Anything, mock.Anything, adminID).
		Return(nil, apperrors.NewDuplicateError("currency EUR already exists")).Once()

	w := s.do(http.MethodPost, "/api/v1/currencies", dto.CreateCurrencyRequest{Code: "EUR", Symbol: "€", Name: "Euro"})

	s.Equal(http.StatusConflict, w.Code)
	s.Equal("currency EUR already exists", decodeBody(s, w)["error"])
}

func (s *HandlerTestSuite) TestGetCurrency() {
	s.Run("invalid id", func() {
		w := s.do(http.MethodGet, "/api/v1/currencies/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
	s.Run("not found", func() {
		s.currency.On("GetCurrencyByID", mock.Anything, usdID).Return(nil, apperrors.ErrNotFound).Once()
		w := s.do(http.MethodGet, "/api/v1/currencies/"+usdID, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
	s.Run("found", func() {
		s.currency.On("GetCurrencyByID", mock.Anything, eurID).Return(eur(), nil).Once()
		w := s.do(http.MethodGet, "/api/v1/currencies/"+eurID, nil)
		s.Equal(http.StatusOK, w.Code)
		s.Equal("EUR", decodeBody(s, w)["code"])
	})
}

func (s *HandlerTestSuite) TestListCurrencies_InternalErrorIsHidden() {
	s.currency.On("ListCurrencies", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	w := s.do(http.MethodGet, "/api/v1/currencies", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to list currencies", decodeBody(s, w)["error"])
	s.NotContains(w.Body.String(), "connection refused")
}

func (s *HandlerTestSuite) TestSetDefaultCurrency() {
	s.currency.On("SetDefaultCurrency", mock.Anything, eurID, adminID).Return(eur(), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/currencies/"+eurID+"/default", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestDeleteCurrency() {
	s.currency.On("DeleteCurrency", mock.Anything, eurID).
		Return(apperrors.NewConflictError("the default currency cannot be deleted")).Once()
	s.currency.On("DeleteCurrency", mock.Anything, usdID).Return(nil).Once()

	s.Equal(http.StatusConflict, s.do(http.MethodDelete, "/api/v1/currencies/"+eurID, nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/currencies/"+usdID, nil).Code)
}

// --- exchange rates ---

func (s *HandlerTestSuite) TestCreateExchangeRate() {
	created := &domain.ExchangeRate{ExchangeRateID: "r1", FromCurrencyID: eurID, ToCurrencyID: bamID, Rate: decimal.RequireFromString("1.95583")}
	s.rates.On("CreateExchangeRate", mock.Anything, mock.MatchedBy(func(r dto.CreateExchangeRateRequest) bool {
		return r.FromCurrencyID == eurID && r.ToCurrencyID == bamID && r.Rate.Equal(decimal.RequireFromString("1.95583"))
	}), adminID).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/exchange-rates",
		`{"fromCurrencyID":"`+eurID+`","toCurrencyID":"`+bamID+`","rate":"1.95583"}`)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("1.95583", decodeBody(s, w)["rate"])
}

func (s *HandlerTestSuite) TestCreateExchangeRate_BindingRejects() {
	tests := []struct {
		name string
		body string
	}{
		{"zero rate", `{"fromCurrencyID":"` + eurID + `","toCurrencyID":"` + bamID + `","rate":"0"}`},
		{"negative rate", `{"fromCurrencyID":"` + eurID + `","toCurrencyID":"` + bamID + `","rate":"-1.2"}`},
		{"not a number", `{"fromCurrencyID":"` + eurID + `","toCurrencyID":"` + bamID + `","rate":"NaN"}`},
		{"same currency", `{"fromCurrencyID":"` + eurID + `","toCurrencyID":"` + eurID + `","rate":"1"}`},
		{"from not a uuid", `{"fromCurrencyID":"EUR","toCurrencyID":"` + bamID + `","rate":"1"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/exchange-rates", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestResolveRate() {
	s.rates.On("ResolveRate", mock.Anything, bamID, eurID).
		Return(dto.ResolveRateResponse{FromCurrencyID: bamID, ToCurrencyID: eurID, Rate: decimal.Zero, Found: false}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/exchange-rates/resolve?from="+bamID+"&to="+eurID, nil)

	s.Equal(http.StatusOK, w.Code)
	body := decodeBody(s, w)
	s.Equal(false, body["found"])
	s.Equal("0", body["rate"])
}

func (s *HandlerTestSuite) TestResolveRate_MissingParams() {
	w := s.do(http.MethodGet, "/api/v1/exchange-rates/resolve?from="+bamID, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListExchangeRates_Filter() {
	s.rates.On("ListExchangeRates", mock.Anything, dto.ListExchangeRatesParams{FromCurrencyID: eurID}).
		Return(snapshot().Rates, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/exchange-rates?from="+eurID, nil)

	s.Equal(http.StatusOK, w.Code)
	var rates []dto.ExchangeRateResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rates))
	s.Len(rates, 1)
}

// --- catalog ---

func (s *HandlerTestSuite) TestCreateCatalogItem() {
	item := widget()
	s.catalog.On("CreateCatalogItem", mock.Anything, mock.MatchedBy(func(r dto.CreateCatalogItemRequest) bool {
		return r.Name == "Widget" && r.VATRate.Equal(decimal.RequireFromString("0.17"))
	}), adminID).Return(&item, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/catalog-items", `{"kind":"PRODUCT","name":"Widget","unitPrice":"10","vatRate":"0.17"}`)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(widgetID, decodeBody(s, w)["catalogItemID"])
}

func (s *HandlerTestSuite) TestCreateCatalogItem_VATAboveOne() {
	w := s.do(http.MethodPost, "/api/v1/catalog-items", `{"kind":"PRODUCT","name":"Widget","unitPrice":"10","vatRate":"1.5"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListCatalogItems() {
	s.catalog.On("ListCatalogItems", mock.Anything, dto.ListCatalogItemsParams{Kind: "SERVICE", IncludeInactive: true}).
		Return([]domain.CatalogItem{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/catalog-items?kind=SERVICE&includeInactive=true", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlerTestSuite) TestDeactivateCatalogItem() {
	s.catalog.On("DeactivateCatalogItem", mock.Anything, widgetID, adminID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/catalog-items/"+widgetID, nil)

	s.Equal(http.StatusNoContent, w.Code)
}

// --- pricing ---

func (s *HandlerTestSuite) TestConvert_DegradedIsNotAnError() {
	resp := dto.ConvertPriceResponse{
		Amount:          decimal.NewFromInt(100),
		ConvertedAmount: decimal.NewFromInt(100),
		FromCurrencyID:  bamID,
		ToCurrencyID:    eurID,
		Degraded:        true,
		Warning: &dto.WarningResponse{
			Code:           pricing.WarningConversionDegraded,
			Message:        "no exchange rate",
			FromCurrencyID: bamID,
			ToCurrencyID:   eurID,
		},
	}
	s.pricing.On("Convert", mock.Anything, mock.MatchedBy(func(r dto.ConvertPriceRequest) bool {
		return r.Amount.Equal(decimal.NewFromInt(100)) && r.FromCurrencyID == bamID
	})).Return(resp, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/pricing/convert", `{"amount":"100","fromCurrencyID":"`+bamID+`","toCurrencyID":"`+eurID+`"}`)

	s.Equal(http.StatusOK, w.Code)
	body := decodeBody(s, w)
	s.Equal(true, body["degraded"])
	s.Equal("100", body["convertedAmount"])
	s.Equal(pricing.WarningConversionDegraded, body["warning"].(map[string]interface{})["code"])
}

func (s *HandlerTestSuite) TestConvert_NegativeAmount() {
	w := s.do(http.MethodPost, "/api/v1/pricing/convert", `{"amount":"-5","fromCurrencyID":"`+bamID+`","toCurrencyID":"`+eurID+`"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestQuote() {
	ctx, err := pricing.NewContext(snapshot(), bamID)
	s.Require().NoError(err)
	q := ctx.NewQuote()
	q.AddCatalogItem(widget(), decimal.NewNullDecimal(decimal.NewFromInt(3)))

	s.pricing.On("Quote", mock.Anything, mock.MatchedBy(func(r dto.QuoteRequest) bool {
		return r.DocumentCurrencyID == bamID && len(r.Lines) == 1 && r.Lines[0].IsCatalogLine()
	})).Return(q, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/pricing/quote",
		`{"documentCurrencyID":"`+bamID+`","lines":[{"catalogItemID":"`+widgetID+`","quantity":"3"}]}`)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Total.Equal(decimal.RequireFromString("68.649633")), resp.Total.String())
	s.Equal("KM 68.65", resp.FormattedTotal)
	s.Equal(eurID, resp.HomeCurrencyID)
	s.False(resp.Degraded)
	s.Empty(resp.Warnings)
	s.Require().Len(resp.Lines, 1)
	s.True(resp.Lines[0].UnitPrice.Equal(decimal.RequireFromString("19.5583")))
	s.True(resp.Lines[0].AppliedRate.Equal(decimal.RequireFromString("1.95583")), resp.Lines[0].AppliedRate.String())
}

func (s *HandlerTestSuite) TestQuote_BindingRejects() {
	tests := []struct {
		name string
		body string
	}{
		{"no lines", `{"documentCurrencyID":"` + bamID + `","lines":[]}`},
		{"custom line without description", `{"documentCurrencyID":"` + bamID + `","lines":[{"quantity":"1","unitPrice":"5"}]}`},
		{"catalog id not a uuid", `{"documentCurrencyID":"` + bamID + `","lines":[{"catalogItemID":"widget"}]}`},
		{"missing document currency", `{"lines":[{"description":"Fee","quantity":"1","unitPrice":"5"}]}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/pricing/quote", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestQuote_ServiceValidationError() {
	s.pricing.On("Quote", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("line 1: invalid line item")).Once()

	w := s.do(http.MethodPost, "/api/v1/pricing/quote",
		`{"documentCurrencyID":"`+bamID+`","lines":[{"description":"Fee","quantity":"-1","unitPrice":"5"}]}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("line 1: invalid line item", decodeBody(s, w)["error"])
}

func (s *HandlerTestSuite) TestRefreshSnapshot() {
	s.pricing.On("RefreshSnapshot", mock.Anything).Return(snapshot(), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/pricing/snapshot/refresh", nil)

	s.Equal(http.StatusOK, w.Code)
	body := decodeBody(s, w)
	s.EqualValues(3, body["currencies"])
	s.EqualValues(1, body["rates"])
}

// --- invoices ---

func sampleInvoice(status domain.InvoiceStatus) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:          invoiceID,
		Number:             "INV-20250301-C7E2A0D4",
		ClientName:         "ACME d.o.o.",
		DocumentCurrencyID: usdID,
		Status:             status,
		IssueDate:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Total:              decimal.RequireFromString("35.1"),
		Degraded:           true,
	}
}

func (s *HandlerTestSuite) TestCreateInvoice_ReturnsWarnings() {
	warnings := []pricing.Warning{{
		Code:           pricing.WarningConversionDegraded,
		FromCurrencyID: eurID,
		ToCurrencyID:   usdID,
		Line:           0,
		Err:            pricing.ErrRateNotFound,
	}}
	s.invoice.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(r dto.CreateInvoiceRequest) bool {
		return r.ClientName == "ACME d.o.o." && r.DocumentCurrencyID == usdID
	}), adminID).Return(sampleInvoice(domain.InvoiceDraft), warnings, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/invoices",
		`{"clientName":"ACME d.o.o.","documentCurrencyID":"`+usdID+`","lines":[{"catalogItemID":"`+widgetID+`","quantity":"3"}]}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Degraded)
	s.Equal("DRAFT", resp.Status)
	s.Require().Len(resp.Warnings, 1)
	s.Require().NotNil(resp.Warnings[0].Line)
	s.Equal(0, *resp.Warnings[0].Line)
}

func (s *HandlerTestSuite) TestCreateInvoice_BlankClient() {
	w := s.do(http.MethodPost, "/api/v1/invoices",
		`{"clientName":"  ","documentCurrencyID":"`+usdID+`","lines":[{"description":"Fee","quantity":"1","unitPrice":"5"}]}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListInvoices() {
	next := "opaque-token"
	s.invoice.On("ListInvoices", mock.Anything, mock.MatchedBy(func(p dto.ListInvoicesParams) bool {
		return p.Limit == 10 && p.Status == "ISSUED" && p.NextToken == nil
	})).Return(&dto.ListInvoicesResponse{
		Invoices:  []dto.InvoiceResponse{dto.ToInvoiceResponse(sampleInvoice(domain.InvoiceIssued))},
		NextToken: &next,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices?limit=10&status=ISSUED", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(next, decodeBody(s, w)["nextToken"])
}

func (s *HandlerTestSuite) TestListInvoices_BadToken() {
	s.invoice.On("ListInvoices", mock.Anything, mock.MatchedBy(func(p dto.ListInvoicesParams) bool {
		return p.NextToken != nil && *p.NextToken == "garbage"
	})).Return(nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.New("base64"))).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices?nextToken=garbage", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("invalid nextToken", decodeBody(s, w)["error"])
}

func (s *HandlerTestSuite) TestListInvoices_LimitOutOfRange() {
	w := s.do(http.MethodGet, "/api/v1/invoices?limit=1000", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdateInvoiceStatus() {
	req := dto.UpdateInvoiceStatusRequest{Status: "PAID"}
	s.invoice.On("UpdateInvoiceStatus", mock.Anything, invoiceID, req, adminID).
		Return(nil, apperrors.NewConflictError("invoice cannot move from DRAFT to PAID")).Once()

	w := s.do(http.MethodPatch, "/api/v1/invoices/"+invoiceID+"/status", req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestUpdateInvoiceStatus_UnknownStatus() {
	w := s.do(http.MethodPatch, "/api/v1/invoices/"+invoiceID+"/status", `{"status":"DRAFT"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetInvoice_NotFound() {
	s.invoice.On("GetInvoiceByID", mock.Anything, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)

	s.Equal(http.StatusNotFound, w.Code)
}

// --- POS ---

func (s *HandlerTestSuite) TestCreatePosOrder() {
	order := &domain.PosOrder{
		PosOrderID:         posOrderID,
		DocumentCurrencyID: bamID,
		PaymentMethod:      domain.PaymentCard,
		Total:              decimal.RequireFromString("68.649633"),
	}
	s.pos.On("CreatePosOrder", mock.Anything, mock.MatchedBy(func(r dto.CreatePosOrderRequest) bool {
		return r.PaymentMethod == "CARD" && len(r.Lines) == 1
	}), adminID).Return(order, []pricing.Warning{}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/pos/orders",
		`{"documentCurrencyID":"`+bamID+`","paymentMethod":"CARD","lines":[{"catalogItemID":"`+widgetID+`","quantity":"3"}]}`)

	s.Equal(http.StatusCreated, w.Code)
	body := decodeBody(s, w)
	s.Equal("68.649633", body["total"])
	s.Equal("CARD", body["paymentMethod"])
}

func (s *HandlerTestSuite) TestCreatePosOrder_UnknownPaymentMethod() {
	w := s.do(http.MethodPost, "/api/v1/pos/orders",
		`{"documentCurrencyID":"`+bamID+`","paymentMethod":"CRYPTO","lines":[{"description":"Fee","quantity":"1","unitPrice":"5"}]}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetPosOrder() {
	s.pos.On("GetPosOrderByID", mock.Anything, posOrderID).
		Return(&domain.PosOrder{PosOrderID: posOrderID, PaymentMethod: domain.PaymentCash}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/pos/orders/"+posOrderID, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(posOrderID, decodeBody(s, w)["posOrderID"])
}
