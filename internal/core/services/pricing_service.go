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
	"golang.org/x/sync/errgroup"
)

type pricingService struct {
	BaseService
	snapshotRepo  portsrepo.PricingSnapshotReader
	catalogRepo   portsrepo.CatalogItemReader
	snapshotCache portsrepo.SnapshotCache
}

// NewPricingService creates the pricing service. cache may be nil.
func NewPricingService(
	snapshotRepo portsrepo.PricingSnapshotReader,
	catalogRepo portsrepo.CatalogItemReader,
	cache portsrepo.SnapshotCache,
) portssvc.PricingSvc {
	return &pricingService{
		snapshotRepo:  snapshotRepo,
		catalogRepo:   catalogRepo,
		snapshotCache: cache,
	}
}

// LoadSnapshot serves the cached snapshot when there is one and falls back to the
// database otherwise. Cache errors never fail a request.
func (s *pricingService) LoadSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	if s.snapshotCache != nil {
		cached, err := s.snapshotCache.Get(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to read pricing snapshot cache")
		} else if cached != nil {
			return *cached, nil
		}
	}
	return s.RefreshSnapshot(ctx)
}

// RefreshSnapshot loads a fresh snapshot from the database and stores it in the cache.
// The cache generation is read before loading; if a currency or rate write invalidates
// the cache meanwhile, the loaded snapshot is returned but not stored.
func (s *pricingService) RefreshSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	var generation int64
	cacheable := s.snapshotCache != nil
	if cacheable {
		gen, err := s.snapshotCache.Generation(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to read pricing snapshot generation")
			cacheable = false
		}
		generation = gen
	}

	snapshot, err := s.snapshotRepo.LoadPricingSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pricing snapshot")
		return domain.PricingSnapshot{}, fmt.Errorf("failed to load pricing snapshot: %w", err)
	}
	snapshot.LoadedAt = s.Now()

	if cacheable {
		stored, err := s.snapshotCache.Set(ctx, snapshot, generation)
		switch {
		case err != nil:
			s.LogError(ctx, err, "Failed to store pricing snapshot in cache")
		case !stored:
			s.LogInfo(ctx, "Pricing data changed while loading, snapshot not cached",
				slog.Int64("generation", generation))
		}
	}
	s.LogDebug(ctx, "Pricing snapshot loaded",
		slog.Int("currencies", len(snapshot.Currencies)),
		slog.Int("rates", len(snapshot.Rates)))
	return snapshot, nil
}

// Convert converts one amount between two directory currencies.
func (s *pricingService) Convert(ctx context.Context, req dto.ConvertPriceRequest) (dto.ConvertPriceResponse, error) {
	if req.Amount.IsNegative() {
		return dto.ConvertPriceResponse{}, apperrors.NewValidationError("amount cannot be negative")
	}
	snapshot, err := s.LoadSnapshot(ctx)
	if err != nil {
		return dto.ConvertPriceResponse{}, err
	}
	for _, id := range []string{req.FromCurrencyID, req.ToCurrencyID} {
		if _, ok := snapshot.FindCurrency(id); !ok {
			return dto.ConvertPriceResponse{}, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", id))
		}
	}

	converted, warn := pricing.ConvertPrice(req.Amount, req.FromCurrencyID, req.ToCurrencyID, snapshot.Rates)
	resp := dto.ConvertPriceResponse{
		Amount:          req.Amount,
		ConvertedAmount: converted,
		FromCurrencyID:  req.FromCurrencyID,
		ToCurrencyID:    req.ToCurrencyID,
	}
	if warn != nil {
		w := dto.ToWarningResponse(warn)
		resp.Degraded = true
		resp.Warning = &w
		s.LogInfo(ctx, "Conversion degraded", slog.String("from", req.FromCurrencyID), slog.String("to", req.ToCurrencyID))
	}
	return resp, nil
}

// Quote prices every line of req against one snapshot. Catalog lines take name, unit
// price and VAT rate from the catalog and are projected from the home currency; custom
// lines are taken as already being in the document currency.
func (s *pricingService) Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.Quote, error) {
	for i, line := range req.Lines {
		check := domain.LineItem{Quantity: line.Quantity}
		if !line.IsCatalogLine() {
			check = line.ToLineItem()
		}
		if err := pricing.ValidateLineItem(check); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("line %d: %v", i, err))
		}
	}

	// The snapshot and the catalog items are independent reads.
	var (
		snapshot domain.PricingSnapshot
		items    map[string]domain.CatalogItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.LoadSnapshot(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.catalogItemsFor(gctx, req.Lines)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pctx, err := pricing.NewContext(snapshot, req.DocumentCurrencyID)
	if err != nil {
		if errors.Is(err, pricing.ErrNoDefaultCurrency) || errors.Is(err, pricing.ErrUnknownCurrency) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, err
	}

	quote := pctx.NewQuote()
	for _, line := range req.Lines {
		if line.IsCatalogLine() {
			quote.AddCatalogItem(items[*line.CatalogItemID], line.Quantity)
		} else {
			quote.AddCustomLine(line.ToLineItem())
		}
	}

	if quote.Degraded() {
		s.LogInfo(ctx, "Quote priced with unconverted lines",
			slog.String("document_currency_id", quote.DocumentCurrencyID),
			slog.String("home_currency_id", quote.HomeCurrencyID),
			slog.Int("degraded_lines", len(quote.Warnings)))
	}
	return quote, nil
}

// catalogItemsFor fetches every catalog item referenced by lines in one query. Unknown
// or inactive items are rejected.
func (s *pricingService) catalogItemsFor(ctx context.Context, lines []dto.QuoteLineRequest) (map[string]domain.CatalogItem, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if line.IsCatalogLine() && !seen[*line.CatalogItemID] {
			seen[*line.CatalogItemID] = true
			ids = append(ids, *line.CatalogItemID)
		}
	}
	if len(ids) == 0 {
		return map[string]domain.CatalogItem{}, nil
	}

	found, err := s.catalogRepo.FindCatalogItemsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load catalog items for quote")
		return nil, fmt.Errorf("failed to load catalog items: %w", err)
	}
	items := make(map[string]domain.CatalogItem, len(found))
	for _, item := range found {
		items[item.CatalogItemID] = item
	}
	for _, id := range ids {
		item, ok := items[id]
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("catalog item %s not found", id))
		}
		if !item.IsActive {
			return nil, apperrors.NewValidationError(fmt.Sprintf("catalog item %s is inactive", id))
		}
	}
	return items, nil
}
