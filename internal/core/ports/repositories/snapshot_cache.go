package repositories

import (
	"context"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
)

// PricingSnapshotReader loads currencies and rates in one consistent read.
type PricingSnapshotReader interface {
	LoadPricingSnapshot(ctx context.Context) (domain.PricingSnapshot, error)
}

// SnapshotCache stores the last loaded pricing snapshot so that quotes do not hit the
// database on every request.
//
// Every invalidation bumps a generation counter. A snapshot is only stored when the
// generation read before loading it is still current, so a load that overlaps a write
// never overwrites the invalidation.
type SnapshotCache interface {
	// Get returns the cached snapshot, or nil without error on a miss.
	Get(ctx context.Context) (*domain.PricingSnapshot, error)

	// Generation returns the current invalidation counter, 0 before the first invalidation.
	Generation(ctx context.Context) (int64, error)

	// Set stores snapshot if generation is still current. stored is false when an
	// invalidation happened in between.
	Set(ctx context.Context, snapshot domain.PricingSnapshot, generation int64) (stored bool, err error)

	// Invalidate drops the cached snapshot and bumps the generation. Called after every
	// currency or rate write.
	Invalidate(ctx context.Context) error
}
