package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implements BatchRepository over PostgreSQL (usable with pool or tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository builds the batch adapter. Pass a pool or a tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, company_id, item_id, batch_number, manufacturing_date, expiry_date,
		purchase_date, purchase_price, quantity_received, quantity_available,
		location_id, supplier_id, is_active, created_at`

// Create persists a new lot.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.CompanyID, batch.ItemID, batch.BatchNumber,
		batch.ManufacturingDate, batch.ExpiryDate, batch.PurchaseDate, batch.PurchasePrice,
		batch.QuantityReceived, batch.QuantityAvailable, batch.LocationID, batch.SupplierID,
		batch.IsActive, batch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// GetByID returns a lot, or nil when absent.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CompanyID, &b.ItemID, &b.BatchNumber, &b.ManufacturingDate, &b.ExpiryDate,
		&b.PurchaseDate, &b.PurchasePrice, &b.QuantityReceived, &b.QuantityAvailable,
		&b.LocationID, &b.SupplierID, &b.IsActive, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// AddAvailable adds delta to quantity_available. The table's CHECK
// (quantity_available BETWEEN 0 AND quantity_received) is the last line of
// defense; the ledger engine validates both bounds first so it never hits it.
func (r *BatchRepo) AddAvailable(id string, delta decimal.Decimal) error {
	query := `UPDATE batches SET quantity_available = quantity_available + $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add batch available: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns lots narrowed by the filter, oldest purchase first.
func (r *BatchRepo) List(filter repository.BatchFilter) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE company_id = $1`
	args := []any{filter.CompanyID}
	pos := 2
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += " ORDER BY purchase_date ASC, id ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.ItemID, &b.BatchNumber, &b.ManufacturingDate,
			&b.ExpiryDate, &b.PurchaseDate, &b.PurchasePrice, &b.QuantityReceived,
			&b.QuantityAvailable, &b.LocationID, &b.SupplierID, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
