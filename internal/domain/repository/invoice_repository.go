package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices and their lines.
// GetByIDForUpdate locks the header row; the payments use case holds that
// lock while it adjusts paid/balance amounts.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByIDForUpdate(id string) (*entity.Invoice, error)
	// UpdatePayment persists paid_amount, balance_amount and status.
	UpdatePayment(invoice *entity.Invoice) error
	List(companyID string) ([]*entity.Invoice, error)
}
