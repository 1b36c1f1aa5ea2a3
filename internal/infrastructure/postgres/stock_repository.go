package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements StockRepository over PostgreSQL (usable with pool or tx).
// The stock table has a unique index on (company_id, item_id, location_id,
// batch_id) with batch_id stored as '' for non-batch stock.
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass a pool or a tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, company_id, item_id, location_id, batch_id, quantity, reserved_quantity, last_updated`

// Get returns the stock row for the key, or a zero-quantity row when absent.
func (r *StockRepo) Get(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock
		WHERE company_id = $1 AND item_id = $2 AND location_id = $3 AND batch_id = $4`
	return r.getRow(query, companyID, itemID, locationID, batchID)
}

// GetForUpdate locks and returns the row for the key. A SELECT FOR UPDATE on
// an absent row locks nothing, so when the key does not exist yet a
// zero-quantity row is inserted first (ON CONFLICT DO NOTHING) and the
// surviving row is locked; concurrent first writers of the same key then
// serialize on the row lock instead of both computing from a stale zero read.
func (r *StockRepo) GetForUpdate(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	s, err := r.lockRow(companyID, itemID, locationID, batchID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}

	insert := `
		INSERT INTO stock (id, company_id, item_id, location_id, batch_id, quantity, reserved_quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5, 0, 0, now())
		ON CONFLICT (company_id, item_id, location_id, batch_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert,
		uuid.New().String(), companyID, itemID, locationID, batchID); err != nil {
		return nil, fmt.Errorf("insert stock placeholder: %w", err)
	}

	// The row now exists: ours, or a concurrent writer's once it commits.
	s, err = r.lockRow(companyID, itemID, locationID, batchID)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

func (r *StockRepo) lockRow(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock
		WHERE company_id = $1 AND item_id = $2 AND location_id = $3 AND batch_id = $4
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, companyID, itemID, locationID, batchID).Scan(
		&s.ID, &s.CompanyID, &s.ItemID, &s.LocationID, &s.BatchID,
		&s.Quantity, &s.ReservedQuantity, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StockRepo) getRow(query, companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, companyID, itemID, locationID, batchID).Scan(
		&s.ID, &s.CompanyID, &s.ItemID, &s.LocationID, &s.BatchID,
		&s.Quantity, &s.ReservedQuantity, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{
				CompanyID:  companyID,
				ItemID:     itemID,
				LocationID: locationID,
				BatchID:    batchID,
				Quantity:   decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ListByItemForUpdate locks and returns the positive rows for an item across
// locations and batches, oldest first. This is the FIFO candidate set.
func (r *StockRepo) ListByItemForUpdate(companyID, itemID string) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock
		WHERE company_id = $1 AND item_id = $2 AND quantity > 0
		ORDER BY last_updated ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, companyID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock for update: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// Upsert writes the row for the stock key. The quantity is absolute, so
// callers must hold the row lock from GetForUpdate or ListByItemForUpdate for
// the duration of the transaction.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, company_id, item_id, location_id, batch_id, quantity, reserved_quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, item_id, location_id, batch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              reserved_quantity = EXCLUDED.reserved_quantity,
		              last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.CompanyID, stock.ItemID, stock.LocationID, stock.BatchID,
		stock.Quantity, stock.ReservedQuantity, stock.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List returns stock rows narrowed by the filter.
func (r *StockRepo) List(filter repository.StockFilter) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE company_id = $1`
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
	query += " ORDER BY item_id, location_id, batch_id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

func scanStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.ItemID, &s.LocationID, &s.BatchID,
			&s.Quantity, &s.ReservedQuantity, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
