package entity

import "time"

// Location represents a physical site of a company (store or warehouse).
// Stock is kept per location.
type Location struct {
	ID          string
	CompanyID   string
	Name        string
	Address     string
	City        string
	State       string
	Pincode     string
	Phone       string
	IsWarehouse bool
	IsActive    bool
	CreatedAt   time.Time
}
