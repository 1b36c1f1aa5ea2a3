package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	CompanyID string
	InvoiceID string
}

// PaymentRepository is the persistence port for payments and gateway payment
// orders.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	List(filter PaymentFilter) ([]*entity.Payment, error)
	CreateOrder(order *entity.PaymentOrder) error
}
