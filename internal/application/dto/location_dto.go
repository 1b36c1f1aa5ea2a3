package dto

import "github.com/rightchoice/medicare-api/internal/domain/entity"

type CreateLocationRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsWarehouse bool   `json:"is_warehouse"`
}

type LocationResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsWarehouse bool   `json:"is_warehouse"`
	IsActive    bool   `json:"is_active"`
}

func ToLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		CompanyID:   l.CompanyID,
		Name:        l.Name,
		Address:     l.Address,
		City:        l.City,
		State:       l.State,
		Pincode:     l.Pincode,
		Phone:       l.Phone,
		IsWarehouse: l.IsWarehouse,
		IsActive:    l.IsActive,
	}
}
