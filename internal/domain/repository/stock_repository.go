package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// StockFilter narrows stock listings. CompanyID is mandatory everywhere.
type StockFilter struct {
	CompanyID  string
	ItemID     string
	LocationID string
}

// StockRepository is the port for reading/updating on-hand quantities per
// (company, item, location, batch) key. The ForUpdate variants lock the rows
// for the duration of the surrounding transaction; the ledger engine relies on
// that to serialize concurrent mutators of the same key.
type StockRepository interface {
	// Get returns the stock row, or a zero-quantity row when none exists yet.
	Get(companyID, itemID, locationID, batchID string) (*entity.Stock, error)
	// GetForUpdate locks and returns the row (SELECT FOR UPDATE). When the
	// key has no row yet it creates and locks a zero-quantity row, so two
	// first writers of the same key cannot both compute from a stale zero.
	GetForUpdate(companyID, itemID, locationID, batchID string) (*entity.Stock, error)
	// ListByItemForUpdate returns all positive-quantity rows for the item
	// across locations/batches, ordered by last_updated ASC then id ASC, with
	// row locks. This is the candidate set for FIFO allocation.
	ListByItemForUpdate(companyID, itemID string) ([]*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	List(filter StockFilter) ([]*entity.Stock, error)
}
