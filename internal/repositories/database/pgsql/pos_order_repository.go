package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/bizhub_pricing/internal/models"
	"github.com/SscSPs/bizhub_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const posOrderLinesTable = "pos_order_lines"

// PgxPosOrderRepository stores checked-out point-of-sale carts.
type PgxPosOrderRepository struct {
	BaseRepository
}

func newPgxPosOrderRepository(pool *pgxpool.Pool) portsrepo.PosOrderRepositoryFacade {
	return &PgxPosOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PosOrderRepositoryFacade = (*PgxPosOrderRepository)(nil)

// SavePosOrder inserts the order and its lines in one database transaction.
func (r *PgxPosOrderRepository) SavePosOrder(ctx context.Context, order domain.PosOrder) error {
	m := mapping.ToModelPosOrder(order)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO pos_orders (pos_order_id, document_currency_id, payment_method, total, degraded,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.PosOrderID,
		m.DocumentCurrencyID,
		m.PaymentMethod,
		m.Total,
		m.Degraded,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert pos order "+m.PosOrderID, err)
	}

	batch := &pgx.Batch{}
	queueDocumentLines(batch, posOrderLinesTable, m.PosOrderID, order.Lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for pos order "+m.PosOrderID, err)
	}

	return r.Commit(ctx, tx)
}

// FindPosOrderByID retrieves an order and its lines.
func (r *PgxPosOrderRepository) FindPosOrderByID(ctx context.Context, posOrderID string) (*domain.PosOrder, error) {
	var m models.PosOrder
	err := r.Pool.QueryRow(ctx, `
		SELECT pos_order_id, document_currency_id, payment_method, total, degraded,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM pos_orders
		WHERE pos_order_id = $1;`, posOrderID,
	).Scan(
		&m.PosOrderID,
		&m.DocumentCurrencyID,
		&m.PaymentMethod,
		&m.Total,
		&m.Degraded,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pos order %s: %w", posOrderID, err)
	}

	lines, err := loadDocumentLines(ctx, r.Pool, posOrderLinesTable, posOrderID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainPosOrder(m, lines)
	return &d, nil
}
