package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the on-hand quantity of an item at a location, optionally scoped
// to a batch. One row per (company, item, location, batch) key; BatchID is
// empty for non-batch-tracked stock. Quantity never goes negative; only the
// ledger engine mutates it.
type Stock struct {
	ID               string
	CompanyID        string
	ItemID           string
	LocationID       string
	BatchID          string
	Quantity         decimal.Decimal
	ReservedQuantity decimal.Decimal
	LastUpdated      time.Time
}
