package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// GRNItem is one received line of a goods received note. Batch fields are
// only used when the item is batch-tracked.
type GRNItem struct {
	ItemID            string
	OrderedQuantity   decimal.Decimal
	ReceivedQuantity  decimal.Decimal
	UnitPrice         decimal.Decimal
	BatchNumber       string
	ManufacturingDate *time.Time
	ExpiryDate        *time.Time
}

// GRN (goods received note) confirms physical receipt against a purchase order.
// Posting a GRN is what actually credits stock.
type GRN struct {
	ID         string
	CompanyID  string
	POID       string
	SupplierID string
	LocationID string
	GRNNumber  string
	GRNDate    time.Time
	Items      []GRNItem
	Status     status.GRN
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
}
