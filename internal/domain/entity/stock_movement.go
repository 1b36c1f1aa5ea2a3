package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types.
const (
	MovementTypePurchase   = "purchase"
	MovementTypeSale       = "sale"
	MovementTypeTransfer   = "transfer"
	MovementTypeAdjustment = "adjustment"
	MovementTypeReturn     = "return"
)

// Reference document types recorded on movements.
const (
	ReferencePurchaseOrder = "purchase_order"
	ReferenceGRN           = "grn"
	ReferenceInvoice       = "invoice"
	ReferenceAdjustment    = "adjustment"
	ReferenceTransfer      = "transfer"
)

// StockMovement is the immutable audit entry for a stock quantity change.
// Quantity is signed: positive inward, negative outward. The running sum of
// movements per (company, item, location) key equals the current stock quantity.
type StockMovement struct {
	ID            string
	CompanyID     string
	ItemID        string
	BatchID       string
	LocationID    string
	MovementType  string
	Quantity      decimal.Decimal
	ReferenceID   string
	ReferenceType string
	MovementDate  time.Time
	CreatedBy     string
	CreatedAt     time.Time
}
