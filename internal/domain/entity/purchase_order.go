package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// PurchaseOrderItem is one line of a purchase order. ReceivedQuantity is
// accumulated by GRN postings and never exceeds Quantity.
type PurchaseOrderItem struct {
	ItemID           string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	GSTRate          decimal.Decimal
	TotalAmount      decimal.Decimal
	ReceivedQuantity decimal.Decimal
}

// PurchaseOrder is a procurement document against a supplier.
type PurchaseOrder struct {
	ID               string
	CompanyID        string
	SupplierID       string
	LocationID       string
	PONumber         string
	PODate           time.Time
	ExpectedDelivery *time.Time
	Items            []PurchaseOrderItem
	Subtotal         decimal.Decimal
	GSTAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	Status           status.Order
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
