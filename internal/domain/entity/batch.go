package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch is a dated lot of a batch-tracked item at a location.
// Invariant: 0 <= QuantityAvailable <= QuantityReceived.
type Batch struct {
	ID                string
	CompanyID         string
	ItemID            string
	BatchNumber       string
	ManufacturingDate *time.Time
	ExpiryDate        *time.Time
	PurchaseDate      time.Time
	PurchasePrice     decimal.Decimal
	QuantityReceived  decimal.Decimal
	QuantityAvailable decimal.Decimal
	LocationID        string
	SupplierID        string
	IsActive          bool
	CreatedAt         time.Time
}
