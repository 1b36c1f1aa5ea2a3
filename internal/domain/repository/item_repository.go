package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// ItemFilter narrows item listings.
type ItemFilter struct {
	CompanyID  string
	CategoryID string
}

// ItemRepository is the persistence port for items.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(filter ItemFilter) ([]*entity.Item, error)
}
