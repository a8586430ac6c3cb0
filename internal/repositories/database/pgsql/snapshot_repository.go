package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/bizhub_pricing/internal/models"
	"github.com/SscSPs/bizhub_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPricingSnapshotRepository reads the currency directory and the rate table together.
type PgxPricingSnapshotRepository struct {
	BaseRepository
}

func newPgxPricingSnapshotRepository(pool *pgxpool.Pool) portsrepo.PricingSnapshotReader {
	return &PgxPricingSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PricingSnapshotReader = (*PgxPricingSnapshotRepository)(nil)

// LoadPricingSnapshot reads currencies and rates inside one REPEATABLE READ, read-only
// transaction so both lists come from the same database snapshot.
func (r *PgxPricingSnapshotRepository) LoadPricingSnapshot(ctx context.Context) (domain.PricingSnapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return domain.PricingSnapshot{}, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code;`)
	if err != nil {
		return domain.PricingSnapshot{}, fmt.Errorf("failed to query currencies: %w", err)
	}
	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return domain.PricingSnapshot{}, fmt.Errorf("failed to scan currencies: %w", err)
	}

	rows, err = tx.Query(ctx, `SELECT `+exchangeRateColumns+` FROM exchange_rates ORDER BY created_at, exchange_rate_id;`)
	if err != nil {
		return domain.PricingSnapshot{}, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return domain.PricingSnapshot{}, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.PricingSnapshot{}, err
	}
	return domain.PricingSnapshot{
		Currencies: mapping.ToDomainCurrencySlice(currencies),
		Rates:      mapping.ToDomainExchangeRateSlice(rates),
	}, nil
}
