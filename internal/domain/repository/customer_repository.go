package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(companyID string) ([]*entity.Customer, error)
}
