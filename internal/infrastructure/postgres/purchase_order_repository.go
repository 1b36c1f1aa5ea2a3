package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implements PurchaseOrderRepository over PostgreSQL.
// Lines live in purchase_order_items keyed by (po_id, item_id) with a
// line_no preserving order.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository builds the purchase order adapter.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, company_id, supplier_id, location_id, po_number, po_date, expected_delivery,
		subtotal, gst_amount, total_amount, status, notes, created_by, created_at, updated_at`

// Create persists the order header and its lines.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.CompanyID, po.SupplierID, po.LocationID, po.PONumber, po.PODate,
		po.ExpectedDelivery, po.Subtotal, po.GSTAmount, po.TotalAmount, po.Status,
		po.Notes, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	lineQuery := `
		INSERT INTO purchase_order_items (po_id, line_no, item_id, quantity, unit_price, gst_rate, total_amount, received_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, li := range po.Items {
		if _, err := r.q.Exec(ctx, lineQuery,
			po.ID, i, li.ItemID, li.Quantity, li.UnitPrice, li.GSTRate, li.TotalAmount, li.ReceivedQuantity,
		); err != nil {
			return fmt.Errorf("create purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID returns the order with its lines, or nil when absent.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	return r.getRow(query, id)
}

// GetByIDForUpdate locks the header row so concurrent GRN postings against
// the same order serialize.
func (r *PurchaseOrderRepo) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	return r.getRow(query, id)
}

func (r *PurchaseOrderRepo) getRow(query, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.CompanyID, &po.SupplierID, &po.LocationID, &po.PONumber, &po.PODate,
		&po.ExpectedDelivery, &po.Subtotal, &po.GSTAmount, &po.TotalAmount, &po.Status,
		&po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listLines(po.ID)
	if err != nil {
		return nil, err
	}
	po.Items = items
	return &po, nil
}

func (r *PurchaseOrderRepo) listLines(poID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT item_id, quantity, unit_price, gst_rate, total_amount, received_quantity
		FROM purchase_order_items WHERE po_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var li entity.PurchaseOrderItem
		if err := rows.Scan(&li.ItemID, &li.Quantity, &li.UnitPrice, &li.GSTRate,
			&li.TotalAmount, &li.ReceivedQuantity); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// Update persists the status and the per-line received quantities.
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `UPDATE purchase_orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, po.ID, po.Status, po.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	lineQuery := `UPDATE purchase_order_items SET received_quantity = $3 WHERE po_id = $1 AND item_id = $2`
	for _, li := range po.Items {
		if _, err := r.q.Exec(ctx, lineQuery, po.ID, li.ItemID, li.ReceivedQuantity); err != nil {
			return fmt.Errorf("update purchase order line: %w", err)
		}
	}
	return nil
}

// List returns the company's orders with their lines, newest first.
func (r *PurchaseOrderRepo) List(companyID string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE company_id = $1 ORDER BY po_date DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.CompanyID, &po.SupplierID, &po.LocationID, &po.PONumber,
			&po.PODate, &po.ExpectedDelivery, &po.Subtotal, &po.GSTAmount, &po.TotalAmount,
			&po.Status, &po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, po := range list {
		items, err := r.listLines(po.ID)
		if err != nil {
			return nil, err
		}
		po.Items = items
	}
	return list, nil
}
