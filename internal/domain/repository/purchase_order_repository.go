package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// PurchaseOrderRepository is the persistence port for purchase orders and
// their lines. GetByIDForUpdate locks the header row so concurrent GRN
// postings against the same PO serialize.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetByIDForUpdate(id string) (*entity.PurchaseOrder, error)
	// Update persists status and per-line received quantities.
	Update(po *entity.PurchaseOrder) error
	List(companyID string) ([]*entity.PurchaseOrder, error)
}
