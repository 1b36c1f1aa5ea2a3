package entity

import "time"

// ItemCategory groups items; categories may be nested via ParentCategoryID.
type ItemCategory struct {
	ID               string
	CompanyID        string
	Name             string
	Description      string
	ParentCategoryID string
	IsActive         bool
	CreatedAt        time.Time
}
