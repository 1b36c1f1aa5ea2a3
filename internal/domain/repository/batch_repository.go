package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

// BatchFilter narrows batch listings.
type BatchFilter struct {
	CompanyID  string
	ItemID     string
	LocationID string
}

// BatchRepository is the port for batch (lot) persistence. AddAvailable is
// used inside ledger transactions; the corresponding stock row lock already
// serializes writers of the same batch.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	// AddAvailable adds delta (possibly negative) to quantity_available. The
	// ledger engine keeps the result within [0, quantity_received].
	AddAvailable(id string, delta decimal.Decimal) error
	List(filter BatchFilter) ([]*entity.Batch, error)
}
