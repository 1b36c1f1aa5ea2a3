package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// CompanyRepository is the persistence port for tenants.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
}
