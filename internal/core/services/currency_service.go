package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// currencyService manages the currency directory.
type currencyService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyRepositoryFacade
	snapshotCache portsrepo.SnapshotCache
}

// NewCurrencyService creates a new currency service. cache may be nil.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade, cache portsrepo.SnapshotCache) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: repo, snapshotCache: cache}
}

// CreateCurrency validates the ISO code and persists a new currency. When no precision is
// given, the ISO 4217 minor unit of the currency is used.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("'%s' is not an ISO 4217 currency code", req.Code))
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing currency", slog.String("code", code))
		return nil, fmt.Errorf("failed to check currency %s: %w", code, err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("currency %s already exists", code))
	}

	precision := domain.DefaultCurrencyPrecision
	if req.Precision != nil {
		precision = *req.Precision
	} else if scale, _ := currency.Standard.Rounding(unit); scale >= 0 {
		precision = scale
	}
	if precision < 0 {
		return nil, apperrors.NewValidationError("precision cannot be negative")
	}

	cur := domain.Currency{
		CurrencyID:  uuid.NewString(),
		Code:        code,
		Symbol:      req.Symbol,
		Name:        req.Name,
		Precision:   precision,
		IsDefault:   req.IsDefault,
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.currencyRepo.SaveCurrency(ctx, cur); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save currency", slog.String("code", code))
		}
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)

	s.LogInfo(ctx, "Currency created", slog.String("currency_id", cur.CurrencyID), slog.String("code", code), slog.Bool("is_default", cur.IsDefault))
	return &cur, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	cur, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency", slog.String("currency_id", currencyID))
		}
		return nil, err
	}
	return cur, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency changes symbol, name or precision. The code and default flag are not
// editable here.
func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error) {
	cur, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if req.Symbol != nil {
		cur.Symbol = *req.Symbol
	}
	if req.Name != nil {
		cur.Name = *req.Name
	}
	if req.Precision != nil {
		if *req.Precision < 0 {
			return nil, apperrors.NewValidationError("precision cannot be negative")
		}
		cur.Precision = *req.Precision
	}
	cur.Touch(userID, s.Now())

	if err := s.currencyRepo.UpdateCurrency(ctx, *cur); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)
	return cur, nil
}

// SetDefaultCurrency makes currencyID the only default currency.
func (s *currencyService) SetDefaultCurrency(ctx context.Context, currencyID string, userID string) (*domain.Currency, error) {
	cur, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if cur.IsDefault {
		return cur, nil
	}

	now := s.Now()
	if err := s.currencyRepo.SetDefaultCurrency(ctx, currencyID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to set default currency", slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to set default currency: %w", err)
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)

	cur.IsDefault = true
	cur.Touch(userID, now)
	s.LogInfo(ctx, "Default currency changed", slog.String("currency_id", currencyID), slog.String("code", cur.Code))
	return cur, nil
}

// DeleteCurrency removes a currency. The default currency cannot be deleted because
// catalog prices are denominated in it.
func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	cur, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return err
	}
	if cur.IsDefault {
		return apperrors.NewConflictError(fmt.Sprintf("currency %s is the default currency and cannot be deleted", cur.Code))
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_id", currencyID))
		}
		return err
	}
	invalidateSnapshot(ctx, &s.BaseService, s.snapshotCache)
	s.LogInfo(ctx, "Currency deleted", slog.String("currency_id", currencyID), slog.String("code", cur.Code))
	return nil
}

// invalidateSnapshot drops the cached pricing snapshot after a write. A cache failure is
// logged and otherwise ignored; the entry expires on its own.
func invalidateSnapshot(ctx context.Context, base *BaseService, cache portsrepo.SnapshotCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		base.LogError(ctx, err, "Failed to invalidate pricing snapshot cache")
	}
}
