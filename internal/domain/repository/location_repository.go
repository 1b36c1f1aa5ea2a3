package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// LocationRepository is the persistence port for company locations.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(companyID string) ([]*entity.Location, error)
}
