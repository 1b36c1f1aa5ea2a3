package dto

import "github.com/rightchoice/medicare-api/internal/domain/entity"

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		GSTIN:   c.GSTIN,
		PAN:     c.PAN,
		Address: c.Address,
		City:    c.City,
		State:   c.State,
		Pincode: c.Pincode,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}
