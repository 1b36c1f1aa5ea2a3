package entity

import "time"

// User roles. Every user belongs to exactly one company (tenant).
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleAccountant = "accountant"
)

// User represents an authenticated operator of the system.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	Name         string
	Phone        string
	Role         string
	LocationIDs  []string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
