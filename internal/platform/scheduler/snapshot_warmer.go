package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// SnapshotRefresher reloads the pricing snapshot and repopulates its cache.
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context) (domain.PricingSnapshot, error)
}

// SnapshotWarmer keeps the pricing snapshot cache warm on a cron schedule.
type SnapshotWarmer struct {
	refresher SnapshotRefresher
	schedule  string
	timeout   time.Duration
	logger    *slog.Logger
	cron      *cron.Cron
}

// NewSnapshotWarmer creates a warmer. schedule uses the five-field cron format
// (e.g. "*/5 * * * *") or a descriptor such as "@every 1m".
func NewSnapshotWarmer(refresher SnapshotRefresher, schedule string, logger *slog.Logger) *SnapshotWarmer {
	if logger == nil {
		logger = slog.Default()
	}
	// Create a new cron scheduler with seconds disabled
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
	return &SnapshotWarmer{
		refresher: refresher,
		schedule:  schedule,
		timeout:   30 * time.Second,
		logger:    logger.With(slog.String("component", "snapshot_warmer")),
		cron:      c,
	}
}

// Start warms the cache once and then schedules further refreshes. It does not block.
// An empty schedule only performs the initial warm-up.
func (w *SnapshotWarmer) Start(ctx context.Context) error {
	w.Run(ctx)

	if w.schedule == "" {
		w.logger.InfoContext(ctx, "Snapshot refresh schedule is empty, periodic refresh disabled")
		return nil
	}

	if _, err := w.cron.AddFunc(w.schedule, func() { w.Run(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh %q: %w", w.schedule, err)
	}
	w.cron.Start()
	w.logger.InfoContext(ctx, "Snapshot refresh scheduled", slog.String("schedule", w.schedule))
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish or ctx to expire.
func (w *SnapshotWarmer) Stop(ctx context.Context) {
	if w == nil {
		return
	}
	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
		w.logger.Warn("Timed out waiting for snapshot refresh to finish")
	}
}

// Run performs a single refresh. Failures are logged; the next tick retries.
func (w *SnapshotWarmer) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	snapshot, err := w.refresher.RefreshSnapshot(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Snapshot refresh failed", slog.String("error", err.Error()))
		return
	}
	w.logger.InfoContext(ctx, "Snapshot refreshed",
		slog.Int("currencies", len(snapshot.Currencies)),
		slog.Int("rates", len(snapshot.Rates)),
		slog.Duration("duration", time.Since(start)),
	)
}
