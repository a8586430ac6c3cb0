package services

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/pricing"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
)

// PricingSvc exposes the pricing engine over the stored currency directory, rate table
// and catalog.
type PricingSvc interface {
	// LoadSnapshot returns one consistent read of currencies and rates, from cache when warm.
	LoadSnapshot(ctx context.Context) (domain.PricingSnapshot, error)

	// RefreshSnapshot reloads the snapshot from the database and repopulates the cache.
	RefreshSnapshot(ctx context.Context) (domain.PricingSnapshot, error)

	// Convert converts one amount. A missing rate is reported in the response, not as an error.
	Convert(ctx context.Context, req dto.ConvertPriceRequest) (dto.ConvertPriceResponse, error)

	// Quote prices a set of catalog and custom lines in a document currency.
	Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.Quote, error)
}
