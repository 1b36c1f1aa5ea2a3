package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// GRNRepository is the persistence port for goods received notes.
type GRNRepository interface {
	Create(grn *entity.GRN) error
	GetByID(id string) (*entity.GRN, error)
	List(companyID string) ([]*entity.GRN, error)
}
