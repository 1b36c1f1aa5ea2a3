package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// SalesOrderItem is one line of a sales order. FulfilledQuantity is
// accumulated by invoice issuance.
type SalesOrderItem struct {
	ItemID            string
	Quantity          decimal.Decimal
	UnitPrice         decimal.Decimal
	GSTRate           decimal.Decimal
	TotalAmount       decimal.Decimal
	FulfilledQuantity decimal.Decimal
}

// SalesOrder is a sale document against a customer.
type SalesOrder struct {
	ID           string
	CompanyID    string
	CustomerID   string
	LocationID   string
	SONumber     string
	SODate       time.Time
	DeliveryDate *time.Time
	Items        []SalesOrderItem
	Subtotal     decimal.Decimal
	GSTAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
	Status       status.Order
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
