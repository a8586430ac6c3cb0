package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/google/uuid"
)

// snapshotLoader is the part of the pricing service the rate service needs.
type snapshotLoader interface {
	LoadSnapshot(ctx context.Context) (domain.PricingSnapshot, error)
}

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo      portsrepo.ExchangeRateRepositoryFacade
	currencyRepo  portsrepo.CurrencyReader
	snapshots     snapshotLoader
	snapshotCache portsrepo.SnapshotCache
}

// NewExchangeRateService creates a new exchange rate service. cache may be nil.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	snapshots snapshotLoader,
	cache portsrepo.SnapshotCache,
) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:      rateRepo,
		currencyRepo:  currencyRepo,
		snapshots:     snapshots,
		snapshotCache: cache,
	}
}

// CreateExchangeRate handles the creation of a new directed exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	for _, side := range []struct{ name, id string }{{"from", req.FromCurrencyID}, {"to", req.ToCurrencyID}} {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, side.id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError(fmt.Sprintf("'%s' currency %s not found", side.name, side.id))
			}
			s.LogError(ctx, err, "Failed to validate currency", slog.String("currency_id", side.id))
			return nil, fmt.Errorf("failed to validate '%s' currency %s: %w", side.name, side.id, err)
		}
	}

	existing, err := s.rateRepo.FindExchangeRate(ctx, req.FromCurrencyID, req.ToCurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing exchange rate")
		return nil, fmt.Errorf("failed to check existing exchange rate: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("exchange rate %s already covers this currency pair", existing.ExchangeRateID))
	}

	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		AuditFields:    domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save exchange rate")
		}
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("from", rate.FromCurrencyID),
		slog.String("to", rate.ToCurrencyID),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, exchangeRateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find exchange rate", slog.String("exchange_rate_id", exchangeRateID))
		}
		return nil, err
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, params.FromCurrencyID, params.ToCurrencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// ResolveRate answers with the exact factor a quote would use, read from the same
// snapshot the pricing engine prices against.
func (s *exchangeRateService) ResolveRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (dto.ResolveRateResponse, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return dto.ResolveRateResponse{}, err
	}
	for _, id := range []string{fromCurrencyID, toCurrencyID} {
		if _, ok := snapshot.FindCurrency(id); !ok {
			return dto.ResolveRateResponse{}, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", id))
		}
	}

	rate, found := pricing.ResolveRate(fromCurrencyID, toCurrencyID, snapshot.Rates)
	return dto.ResolveRateResponse{
		FromCurrencyID: fromCurrencyID,
		ToCurrencyID:   toCurrencyID,
		Rate:           rate,
		Found:          found,
	}, nil
}

func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, exchangeRateID string) error {
	if err := s.rateRepo.DeleteExchangeRate(ctx, exchangeRateID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete exchange rate", slog.String("exchange_rate_id", exchangeRateID))
		}
		return err
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)
	s.LogInfo(ctx, "Exchange rate deleted", slog.String("exchange_rate_id", exchangeRateID))
	return nil
}
