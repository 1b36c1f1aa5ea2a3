package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// SalesOrderRepository is the persistence port for sales orders and their
// lines. GetByIDForUpdate locks the header row so concurrent invoice
// issuances against the same SO serialize.
type SalesOrderRepository interface {
	Create(so *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	GetByIDForUpdate(id string) (*entity.SalesOrder, error)
	// Update persists status and per-line fulfilled quantities.
	Update(so *entity.SalesOrder) error
	List(companyID string) ([]*entity.SalesOrder, error)
}
