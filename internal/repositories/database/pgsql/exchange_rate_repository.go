package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/bizhub_pricing/internal/models"
	"github.com/SscSPs/bizhub_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_id, to_currency_id, rate,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryWithTx using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.FromCurrencyID,
		&m.ToCurrencyID,
		&m.Rate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExchangeRate inserts a new directed rate.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.ExchangeRateID,
		m.FromCurrencyID,
		m.ToCurrencyID,
		m.Rate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("an exchange rate for this currency pair already exists")
		case pgForeignKeyViolation:
			return apperrors.NewValidationError("exchange rate references an unknown currency")
		}
		return apperrors.NewAppError(500, "failed to save exchange rate "+m.ExchangeRateID, err)
	}
	return nil
}

// DeleteExchangeRate removes an exchange rate by ID.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, exchangeRateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchange_rates WHERE exchange_rate_id = $1;`, exchangeRateID)
	if err != nil {
		return fmt.Errorf("failed to delete exchange rate %s: %w", exchangeRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, exchangeRateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %s: %w", exchangeRateID, err)
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// FindExchangeRate retrieves the directed rate from -> to.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2;`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrencyID, toCurrencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %s->%s: %w", fromCurrencyID, toCurrencyID, err)
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListExchangeRates retrieves the rate table in insertion order, optionally filtered by
// source and/or target currency.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID string) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE TRUE`
	args := []interface{}{}
	if fromCurrencyID != "" {
		args = append(args, fromCurrencyID)
		query += " AND from_currency_id = $" + strconv.Itoa(len(args))
	}
	if toCurrencyID != "" {
		args = append(args, toCurrencyID)
		query += " AND to_currency_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at, exchange_rate_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
