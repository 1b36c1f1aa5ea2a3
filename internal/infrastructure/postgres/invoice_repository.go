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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL. Lines are
// immutable after issuance; only the payment fields of the header change.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the invoice adapter.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, customer_id, so_id, invoice_number, invoice_date, due_date,
		subtotal, total_cgst, total_sgst, total_igst, total_gst, total_amount,
		paid_amount, balance_amount, status, payment_terms, notes, created_by, created_at, updated_at`

// Create persists the invoice header and its lines.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, nullIfEmpty(invoice.SOID),
		invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate,
		invoice.Subtotal, invoice.TotalCGST, invoice.TotalSGST, invoice.TotalIGST,
		invoice.TotalGST, invoice.TotalAmount, invoice.PaidAmount, invoice.BalanceAmount,
		invoice.Status, invoice.PaymentTerms, invoice.Notes, invoice.CreatedBy,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create invoice: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create invoice: %w", err)
	}
	lineQuery := `
		INSERT INTO invoice_items (invoice_id, line_no, item_id, quantity, unit_price, gst_rate,
			cgst_amount, sgst_amount, igst_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i, li := range invoice.Items {
		if _, err := r.q.Exec(ctx, lineQuery,
			invoice.ID, i, li.ItemID, li.Quantity, li.UnitPrice, li.GSTRate,
			li.CGSTAmount, li.SGSTAmount, li.IGSTAmount, li.TotalAmount,
		); err != nil {
			return fmt.Errorf("create invoice line: %w", err)
		}
	}
	return nil
}

// GetByID returns the invoice with its lines, or nil when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.getRow(query, id)
}

// GetByIDForUpdate locks the header row so concurrent payments against the
// same invoice serialize.
func (r *InvoiceRepo) GetByIDForUpdate(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return r.getRow(query, id)
}

func (r *InvoiceRepo) getRow(query, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	var soID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &soID,
		&inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate,
		&inv.Subtotal, &inv.TotalCGST, &inv.TotalSGST, &inv.TotalIGST,
		&inv.TotalGST, &inv.TotalAmount, &inv.PaidAmount, &inv.BalanceAmount,
		&inv.Status, &inv.PaymentTerms, &inv.Notes, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if soID != nil {
		inv.SOID = *soID
	}
	items, err := r.listLines(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

func (r *InvoiceRepo) listLines(invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT item_id, quantity, unit_price, gst_rate, cgst_amount, sgst_amount, igst_amount, total_amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceItem
	for rows.Next() {
		var li entity.InvoiceItem
		if err := rows.Scan(&li.ItemID, &li.Quantity, &li.UnitPrice, &li.GSTRate,
			&li.CGSTAmount, &li.SGSTAmount, &li.IGSTAmount, &li.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// UpdatePayment persists the paid amount, balance and derived status.
func (r *InvoiceRepo) UpdatePayment(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET paid_amount = $2, balance_amount = $3, status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.PaidAmount, invoice.BalanceAmount, invoice.Status, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice payment: %w", domain.ErrNotFound)
	}
	return nil
}

// List returns the company's invoices with their lines, newest first.
func (r *InvoiceRepo) List(companyID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1 ORDER BY invoice_date DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var soID *string
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerID, &soID,
			&inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate,
			&inv.Subtotal, &inv.TotalCGST, &inv.TotalSGST, &inv.TotalIGST,
			&inv.TotalGST, &inv.TotalAmount, &inv.PaidAmount, &inv.BalanceAmount,
			&inv.Status, &inv.PaymentTerms, &inv.Notes, &inv.CreatedBy,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if soID != nil {
			inv.SOID = *soID
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		items, err := r.listLines(inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}
	return list, nil
}
