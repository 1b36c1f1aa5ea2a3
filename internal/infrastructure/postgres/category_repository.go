package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements CategoryRepository over PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository builds the category adapter.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, company_id, name, description, parent_category_id, is_active, created_at`

// Create persists a category.
func (r *CategoryRepo) Create(category *entity.ItemCategory) error {
	query := `
		INSERT INTO item_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CompanyID, category.Name, category.Description,
		nullIfEmpty(category.ParentCategoryID), category.IsActive, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID returns a category, or nil when absent.
func (r *CategoryRepo) GetByID(id string) (*entity.ItemCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM item_categories WHERE id = $1`
	var c entity.ItemCategory
	var parentID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description, &parentID, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	if parentID != nil {
		c.ParentCategoryID = *parentID
	}
	return &c, nil
}

// List returns the company's categories.
func (r *CategoryRepo) List(companyID string) ([]*entity.ItemCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM item_categories WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemCategory
	for rows.Next() {
		var c entity.ItemCategory
		var parentID *string
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &parentID,
			&c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if parentID != nil {
			c.ParentCategoryID = *parentID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
