package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// MovementFilter narrows movement listings.
type MovementFilter struct {
	CompanyID  string
	ItemID     string
	LocationID string
}

// StockMovementRepository is the append-only port for the movement ledger.
// Movements are never updated or deleted.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List returns movements newest first.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
