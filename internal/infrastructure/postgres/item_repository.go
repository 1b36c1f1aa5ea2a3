package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over PostgreSQL (usable with pool or tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the item adapter. Pass a pool or a tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, name, description, sku, hsn_code, category_id, unit,
		gst_rate, purchase_price, selling_price, min_stock_level, max_stock_level,
		is_batch_tracked, is_active, created_at, updated_at`

// Create persists an item. Duplicate SKU within a company fails with
// ErrDuplicate (unique index on company_id, sku).
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Name, item.Description, item.SKU, item.HSNCode,
		nullIfEmpty(item.CategoryID), item.Unit, item.GSTRate, item.PurchasePrice, item.SellingPrice,
		item.MinStockLevel, item.MaxStockLevel, item.IsBatchTracked, item.IsActive,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID returns an item, or nil when absent.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it entity.Item
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.CompanyID, &it.Name, &it.Description, &it.SKU, &it.HSNCode,
		&categoryID, &it.Unit, &it.GSTRate, &it.PurchasePrice, &it.SellingPrice,
		&it.MinStockLevel, &it.MaxStockLevel, &it.IsBatchTracked, &it.IsActive,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if categoryID != nil {
		it.CategoryID = *categoryID
	}
	return &it, nil
}

// Update persists the mutable item fields.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET
			name = $2, description = $3, hsn_code = $4, category_id = $5, unit = $6,
			gst_rate = $7, purchase_price = $8, selling_price = $9,
			min_stock_level = $10, max_stock_level = $11, is_active = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.HSNCode, nullIfEmpty(item.CategoryID), item.Unit,
		item.GSTRate, item.PurchasePrice, item.SellingPrice,
		item.MinStockLevel, item.MaxStockLevel, item.IsActive, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns the company's items, optionally filtered by category.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1`
	args := []any{filter.CompanyID}
	if filter.CategoryID != "" {
		query += " AND category_id = $2"
		args = append(args, filter.CategoryID)
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var categoryID *string
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Name, &it.Description, &it.SKU, &it.HSNCode,
			&categoryID, &it.Unit, &it.GSTRate, &it.PurchasePrice, &it.SellingPrice,
			&it.MinStockLevel, &it.MaxStockLevel, &it.IsBatchTracked, &it.IsActive,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if categoryID != nil {
			it.CategoryID = *categoryID
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// nullIfEmpty maps "" to NULL for nullable FK columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
