package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/models"
	"github.com/SscSPs/bizhub_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queueDocumentLines adds one INSERT per line to batch. table is either invoice_lines or
// pos_order_lines; both share the same shape.
func queueDocumentLines(batch *pgx.Batch, table, documentID string, lines []domain.DocumentLine) {
	query := `
		INSERT INTO ` + table + ` (line_id, document_id, position, catalog_item_id, description,
			quantity, unit_price, vat_rate, line_total, degraded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	for _, line := range lines {
		m := mapping.ToModelDocumentLine(documentID, line)
		batch.Queue(query,
			m.LineID,
			m.DocumentID,
			m.Position,
			m.CatalogItemID,
			m.Description,
			m.Quantity,
			m.UnitPrice,
			m.VATRate,
			m.LineTotal,
			m.Degraded,
		)
	}
}

// loadDocumentLines fetches the lines of one document in position order.
func loadDocumentLines(ctx context.Context, pool *pgxpool.Pool, table, documentID string) ([]models.DocumentLine, error) {
	rows, err := pool.Query(ctx, `
		SELECT line_id, document_id, position, catalog_item_id, description,
		       quantity, unit_price, vat_rate, line_total, degraded
		FROM `+table+`
		WHERE document_id = $1
		ORDER BY position;`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for %s: %w", table, documentID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DocumentLine, error) {
		var m models.DocumentLine
		err := row.Scan(
			&m.LineID,
			&m.DocumentID,
			&m.Position,
			&m.CatalogItemID,
			&m.Description,
			&m.Quantity,
			&m.UnitPrice,
			&m.VATRate,
			&m.LineTotal,
			&m.Degraded,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for %s: %w", table, documentID, err)
	}
	return lines, nil
}
