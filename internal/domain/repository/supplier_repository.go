package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// SupplierRepository is the persistence port for suppliers.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(companyID string) ([]*entity.Supplier, error)
}
