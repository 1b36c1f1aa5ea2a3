package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implements SalesOrderRepository over PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository builds the sales order adapter.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const soColumns = `id, company_id, customer_id, location_id, so_number, so_date, delivery_date,
		subtotal, gst_amount, total_amount, status, notes, created_by, created_at, updated_at`

// Create persists the order header and its lines.
func (r *SalesOrderRepo) Create(so *entity.SalesOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales_orders (` + soColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		so.ID, so.CompanyID, so.CustomerID, so.LocationID, so.SONumber, so.SODate,
		so.DeliveryDate, so.Subtotal, so.GSTAmount, so.TotalAmount, so.Status,
		so.Notes, so.CreatedBy, so.CreatedAt, so.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sales order: %w", err)
	}
	lineQuery := `
		INSERT INTO sales_order_items (so_id, line_no, item_id, quantity, unit_price, gst_rate, total_amount, fulfilled_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, li := range so.Items {
		if _, err := r.q.Exec(ctx, lineQuery,
			so.ID, i, li.ItemID, li.Quantity, li.UnitPrice, li.GSTRate, li.TotalAmount, li.FulfilledQuantity,
		); err != nil {
			return fmt.Errorf("create sales order line: %w", err)
		}
	}
	return nil
}

// GetByID returns the order with its lines, or nil when absent.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + soColumns + ` FROM sales_orders WHERE id = $1`
	return r.getRow(query, id)
}

// GetByIDForUpdate locks the header row so concurrent invoice issuances
// against the same order serialize.
func (r *SalesOrderRepo) GetByIDForUpdate(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + soColumns + ` FROM sales_orders WHERE id = $1 FOR UPDATE`
	return r.getRow(query, id)
}

func (r *SalesOrderRepo) getRow(query, id string) (*entity.SalesOrder, error) {
	var so entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&so.ID, &so.CompanyID, &so.CustomerID, &so.LocationID, &so.SONumber, &so.SODate,
		&so.DeliveryDate, &so.Subtotal, &so.GSTAmount, &so.TotalAmount, &so.Status,
		&so.Notes, &so.CreatedBy, &so.CreatedAt, &so.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	items, err := r.listLines(so.ID)
	if err != nil {
		return nil, err
	}
	so.Items = items
	return &so, nil
}

func (r *SalesOrderRepo) listLines(soID string) ([]entity.SalesOrderItem, error) {
	query := `
		SELECT item_id, quantity, unit_price, gst_rate, total_amount, fulfilled_quantity
		FROM sales_order_items WHERE so_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, soID)
	if err != nil {
		return nil, fmt.Errorf("list sales order lines: %w", err)
	}
	defer rows.Close()
	var items []entity.SalesOrderItem
	for rows.Next() {
		var li entity.SalesOrderItem
		if err := rows.Scan(&li.ItemID, &li.Quantity, &li.UnitPrice, &li.GSTRate,
			&li.TotalAmount, &li.FulfilledQuantity); err != nil {
			return nil, fmt.Errorf("scan sales order line: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// Update persists the status and the per-line fulfilled quantities.
func (r *SalesOrderRepo) Update(so *entity.SalesOrder) error {
	ctx := context.Background()
	query := `UPDATE sales_orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, so.ID, so.Status, so.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	lineQuery := `UPDATE sales_order_items SET fulfilled_quantity = $3 WHERE so_id = $1 AND item_id = $2`
	for _, li := range so.Items {
		if _, err := r.q.Exec(ctx, lineQuery, so.ID, li.ItemID, li.FulfilledQuantity); err != nil {
			return fmt.Errorf("update sales order line: %w", err)
		}
	}
	return nil
}

// List returns the company's orders with their lines, newest first.
func (r *SalesOrderRepo) List(companyID string) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + soColumns + ` FROM sales_orders WHERE company_id = $1 ORDER BY so_date DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		var so entity.SalesOrder
		if err := rows.Scan(&so.ID, &so.CompanyID, &so.CustomerID, &so.LocationID, &so.SONumber,
			&so.SODate, &so.DeliveryDate, &so.Subtotal, &so.GSTAmount, &so.TotalAmount,
			&so.Status, &so.Notes, &so.CreatedBy, &so.CreatedAt, &so.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &so)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, so := range list {
		items, err := r.listLines(so.ID)
		if err != nil {
			return nil, err
		}
		so.Items = items
	}
	return list, nil
}
