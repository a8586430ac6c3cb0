package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/bizhub_pricing/internal/models"
	"github.com/SscSPs/bizhub_pricing/internal/utils/mapping"
	"github.com/SscSPs/bizhub_pricing/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	invoiceColumns = `invoice_id, number, client_name, document_currency_id, status, issue_date, due_date,
		notes, total, degraded, created_at, created_by, last_updated_at, last_updated_by`
	invoiceLinesTable   = "invoice_lines"
	defaultInvoiceLimit = 20
)

// PgxInvoiceRepository stores invoices and their frozen lines.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.ClientName,
		&m.DocumentCurrencyID,
		&m.Status,
		&m.IssueDate,
		&m.DueDate,
		&m.Notes,
		&m.Total,
		&m.Degraded,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice inserts the invoice header and its lines in one database transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.InvoiceID,
		m.Number,
		m.ClientName,
		m.DocumentCurrencyID,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.Notes,
		m.Total,
		m.Degraded,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("invoice number " + m.Number + " already exists")
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	queueDocumentLines(batch, invoiceLinesTable, m.InvoiceID, invoice.Lines)
	// Close reports the first failing statement of the batch.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceStatus sets the status column of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;`,
		invoiceID, string(status), now, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindInvoiceByID retrieves an invoice and its lines.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	lines, err := loadDocumentLines(ctx, r.Pool, invoiceLinesTable, invoiceID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainInvoice(m, lines)
	return &d, nil
}

// ListInvoices retrieves a page of invoice headers using keyset pagination over
// (issue_date, created_at, invoice_id), newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = defaultInvoiceLimit
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE TRUE`
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		query += " AND status = $" + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, cursor.SortDate, cursor.CreatedAt, cursor.ID)
		n := len(args)
		// Tuple comparison is concise and efficient in Postgres
		query += " AND (issue_date, created_at, invoice_id) < ($" + strconv.Itoa(n-2) +
			", $" + strconv.Itoa(n-1) + ", $" + strconv.Itoa(n) + "::uuid)"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY issue_date DESC, created_at DESC, invoice_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan invoices", err)
	}

	var nextTokenVal *string
	if len(modelInvoices) > limit {
		last := modelInvoices[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			SortDate:  last.IssueDate,
			CreatedAt: last.CreatedAt,
			ID:        last.InvoiceID,
		})
		nextTokenVal = &token
		modelInvoices = modelInvoices[:limit]
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = mapping.ToDomainInvoice(m, nil)
	}
	return invoices, nextTokenVal, nil
}
