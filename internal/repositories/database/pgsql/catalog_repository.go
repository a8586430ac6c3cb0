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

const catalogItemColumns = `catalog_item_id, kind, name, description, unit_price, vat_rate, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxCatalogItemRepository stores products and services.
type PgxCatalogItemRepository struct {
	BaseRepository
}

func newPgxCatalogItemRepository(pool *pgxpool.Pool) portsrepo.CatalogItemRepositoryFacade {
	return &PgxCatalogItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CatalogItemRepositoryFacade = (*PgxCatalogItemRepository)(nil)

func scanCatalogItem(row pgx.Row) (models.CatalogItem, error) {
	var m models.CatalogItem
	err := row.Scan(
		&m.CatalogItemID,
		&m.Kind,
		&m.Name,
		&m.Description,
		&m.UnitPrice,
		&m.VATRate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectCatalogItems(rows pgx.Rows) ([]domain.CatalogItem, error) {
	defer rows.Close()
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CatalogItem, error) {
		return scanCatalogItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog items: %w", err)
	}
	return mapping.ToDomainCatalogItemSlice(items), nil
}

// SaveCatalogItem inserts a new catalog item.
func (r *PgxCatalogItemRepository) SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	m := mapping.ToModelCatalogItem(item)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO catalog_items (`+catalogItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.CatalogItemID,
		m.Kind,
		m.Name,
		m.Description,
		m.UnitPrice,
		m.VATRate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save catalog item "+m.CatalogItemID, err)
	}
	return nil
}

// UpdateCatalogItem overwrites the mutable fields of a catalog item.
func (r *PgxCatalogItemRepository) UpdateCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	m := mapping.ToModelCatalogItem(item)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE catalog_items
		SET name = $2, description = $3, unit_price = $4, vat_rate = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE catalog_item_id = $1;`,
		m.CatalogItemID, m.Name, m.Description, m.UnitPrice, m.VATRate, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update catalog item "+m.CatalogItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCatalogItemByID retrieves a catalog item by its ID, active or not.
func (r *PgxCatalogItemRepository) FindCatalogItemByID(ctx context.Context, catalogItemID string) (*domain.CatalogItem, error) {
	query := `SELECT ` + catalogItemColumns + ` FROM catalog_items WHERE catalog_item_id = $1;`
	m, err := scanCatalogItem(r.Pool.QueryRow(ctx, query, catalogItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find catalog item %s: %w", catalogItemID, err)
	}
	d := mapping.ToDomainCatalogItem(m)
	return &d, nil
}

// FindCatalogItemsByIDs retrieves all items whose ID is in catalogItemIDs.
func (r *PgxCatalogItemRepository) FindCatalogItemsByIDs(ctx context.Context, catalogItemIDs []string) ([]domain.CatalogItem, error) {
	if len(catalogItemIDs) == 0 {
		return []domain.CatalogItem{}, nil
	}
	query := `SELECT ` + catalogItemColumns + ` FROM catalog_items WHERE catalog_item_id = ANY($1::uuid[]);`
	rows, err := r.Pool.Query(ctx, query, catalogItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items by ids: %w", err)
	}
	return collectCatalogItems(rows)
}

// ListCatalogItems lists catalog items by name, optionally restricted to a kind.
func (r *PgxCatalogItemRepository) ListCatalogItems(ctx context.Context, kind string, includeInactive bool) ([]domain.CatalogItem, error) {
	query := `SELECT ` + catalogItemColumns + ` FROM catalog_items WHERE TRUE`
	args := []interface{}{}
	if kind != "" {
		args = append(args, kind)
		query += " AND kind = $" + strconv.Itoa(len(args))
	}
	if !includeInactive {
		query += " AND is_active"
	}
	query += " ORDER BY name, catalog_item_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	return collectCatalogItems(rows)
}
