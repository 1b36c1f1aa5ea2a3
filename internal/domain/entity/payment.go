package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment modes.
const (
	PaymentModeCash         = "cash"
	PaymentModeCheque       = "cheque"
	PaymentModeBankTransfer = "bank_transfer"
	PaymentModeUPI          = "upi"
	PaymentModeCard         = "card"
	PaymentModeOnline       = "online"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Payment is a settlement against an invoice. The sum of successful payments
// never exceeds the invoice total.
type Payment struct {
	ID               string
	CompanyID        string
	InvoiceID        string
	CustomerID       string
	Amount           decimal.Decimal
	PaymentMode      string
	PaymentDate      time.Time
	ReferenceNumber  string
	GatewayPaymentID string // set for online payments
	Status           string
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
}

// PaymentOrder is a gateway payment intent persisted for reconciliation.
type PaymentOrder struct {
	ID        string // gateway order id
	CompanyID string
	InvoiceID string
	Amount    decimal.Decimal
	Currency  string
	Status    string
	CreatedBy string
	CreatedAt time.Time
}
