package entity

import "time"

// Supplier is a vendor the company purchases from.
type Supplier struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string
	Phone        string
	GSTIN        string
	Address      string
	City         string
	State        string
	Pincode      string
	PaymentTerms string // e.g. "Net 30"
	IsActive     bool
	CreatedAt    time.Time
}
