package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// CategoryRepository is the persistence port for item categories.
type CategoryRepository interface {
	Create(category *entity.ItemCategory) error
	GetByID(id string) (*entity.ItemCategory, error)
	List(companyID string) ([]*entity.ItemCategory, error)
}
