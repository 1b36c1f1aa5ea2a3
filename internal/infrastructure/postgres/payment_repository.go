package postgres

import (
	"context"
	"fmt"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository over PostgreSQL. Payments are
// append-only; gateway payment orders go to their own table.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the payment adapter.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, company_id, invoice_id, customer_id, amount, payment_mode, payment_date,
		reference_number, gateway_payment_id, status, notes, created_by, created_at`

// Create persists a payment record.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CompanyID, payment.InvoiceID, payment.CustomerID,
		payment.Amount, payment.PaymentMode, payment.PaymentDate,
		payment.ReferenceNumber, payment.GatewayPaymentID, payment.Status,
		payment.Notes, payment.CreatedBy, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// List returns payments matching the filter, newest first.
func (r *PaymentRepo) List(filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1`
	args := []any{filter.CompanyID}
	if filter.InvoiceID != "" {
		args = append(args, filter.InvoiceID)
		query += fmt.Sprintf(" AND invoice_id = $%d", len(args))
	}
	query += " ORDER BY payment_date DESC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.InvoiceID, &p.CustomerID,
			&p.Amount, &p.PaymentMode, &p.PaymentDate,
			&p.ReferenceNumber, &p.GatewayPaymentID, &p.Status,
			&p.Notes, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CreateOrder persists a gateway payment order for later reconciliation.
func (r *PaymentRepo) CreateOrder(order *entity.PaymentOrder) error {
	query := `
		INSERT INTO payment_orders (id, company_id, invoice_id, amount, currency, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.InvoiceID, order.Amount,
		order.Currency, order.Status, order.CreatedBy, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create payment order: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create payment order: %w", err)
	}
	return nil
}
