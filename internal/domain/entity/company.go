package entity

import "time"

// Company represents a tenant of the system. All other entities are scoped
// by CompanyID; cross-tenant access is a correctness violation.
type Company struct {
	ID        string
	Name      string
	GSTIN     string // 15-char GST identification number
	PAN       string
	Address   string
	City      string
	State     string // used for the intra/inter-state GST rule
	Pincode   string
	Phone     string
	Email     string
	IsActive  bool
	CreatedAt time.Time
}
