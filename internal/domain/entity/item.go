package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a sellable/stockable product (SKU unique per company).
// GSTRate is a percentage (0, 5, 12, 18, 28). Batch-tracked items carry
// expiry-dated lots in the batches table.
type Item struct {
	ID             string
	CompanyID      string
	Name           string
	Description    string
	SKU            string
	HSNCode        string // tax classification code for GST
	CategoryID     string
	Unit           string // pieces, strips, boxes, ml, ...
	GSTRate        decimal.Decimal
	PurchasePrice  decimal.Decimal
	SellingPrice   decimal.Decimal
	MinStockLevel  decimal.Decimal
	MaxStockLevel  decimal.Decimal
	IsBatchTracked bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
