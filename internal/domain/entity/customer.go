package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a buyer of the company. State drives the CGST/SGST vs IGST split
// on invoices.
type Customer struct {
	ID              string
	CompanyID       string
	Name            string
	Email           string
	Phone           string
	GSTIN           string
	BillingAddress  string
	ShippingAddress string
	City            string
	State           string
	Pincode         string
	CreditLimit     decimal.Decimal
	CreditDays      int
	IsActive        bool
	CreatedAt       time.Time
}
