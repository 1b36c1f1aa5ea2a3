package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.GRNRepository = (*GRNRepo)(nil)

// GRNRepo implements GRNRepository over PostgreSQL. GRNs are immutable once
// posted, so there is no update path.
type GRNRepo struct {
	q Querier
}

// NewGRNRepository builds the goods received note adapter.
func NewGRNRepository(q Querier) *GRNRepo {
	return &GRNRepo{q: q}
}

const grnColumns = `id, company_id, po_id, supplier_id, location_id, grn_number, grn_date,
		status, notes, created_by, created_at`

// Create persists the note and its lines.
func (r *GRNRepo) Create(grn *entity.GRN) error {
	ctx := context.Background()
	query := `
		INSERT INTO grns (` + grnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		grn.ID, grn.CompanyID, grn.POID, grn.SupplierID, grn.LocationID,
		grn.GRNNumber, grn.GRNDate, grn.Status, grn.Notes, grn.CreatedBy, grn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create grn: %w", err)
	}
	lineQuery := `
		INSERT INTO grn_items (grn_id, line_no, item_id, ordered_quantity, received_quantity,
			unit_price, batch_number, manufacturing_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i, li := range grn.Items {
		if _, err := r.q.Exec(ctx, lineQuery,
			grn.ID, i, li.ItemID, li.OrderedQuantity, li.ReceivedQuantity,
			li.UnitPrice, li.BatchNumber, li.ManufacturingDate, li.ExpiryDate,
		); err != nil {
			return fmt.Errorf("create grn line: %w", err)
		}
	}
	return nil
}

// GetByID returns the note with its lines, or nil when absent.
func (r *GRNRepo) GetByID(id string) (*entity.GRN, error) {
	query := `SELECT ` + grnColumns + ` FROM grns WHERE id = $1`
	var grn entity.GRN
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&grn.ID, &grn.CompanyID, &grn.POID, &grn.SupplierID, &grn.LocationID,
		&grn.GRNNumber, &grn.GRNDate, &grn.Status, &grn.Notes, &grn.CreatedBy, &grn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grn: %w", err)
	}
	items, err := r.listLines(grn.ID)
	if err != nil {
		return nil, err
	}
	grn.Items = items
	return &grn, nil
}

func (r *GRNRepo) listLines(grnID string) ([]entity.GRNItem, error) {
	query := `
		SELECT item_id, ordered_quantity, received_quantity, unit_price, batch_number,
			manufacturing_date, expiry_date
		FROM grn_items WHERE grn_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, grnID)
	if err != nil {
		return nil, fmt.Errorf("list grn lines: %w", err)
	}
	defer rows.Close()
	var items []entity.GRNItem
	for rows.Next() {
		var li entity.GRNItem
		if err := rows.Scan(&li.ItemID, &li.OrderedQuantity, &li.ReceivedQuantity,
			&li.UnitPrice, &li.BatchNumber, &li.ManufacturingDate, &li.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan grn line: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// List returns the company's notes with their lines, newest first.
func (r *GRNRepo) List(companyID string) ([]*entity.GRN, error) {
	query := `SELECT ` + grnColumns + ` FROM grns WHERE company_id = $1 ORDER BY grn_date DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list grns: %w", err)
	}
	defer rows.Close()
	var list []*entity.GRN
	for rows.Next() {
		var grn entity.GRN
		if err := rows.Scan(&grn.ID, &grn.CompanyID, &grn.POID, &grn.SupplierID, &grn.LocationID,
			&grn.GRNNumber, &grn.GRNDate, &grn.Status, &grn.Notes, &grn.CreatedBy, &grn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan grn: %w", err)
		}
		list = append(list, &grn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, grn := range list {
		items, err := r.listLines(grn.ID)
		if err != nil {
			return nil, err
		}
		grn.Items = items
	}
	return list, nil
}
