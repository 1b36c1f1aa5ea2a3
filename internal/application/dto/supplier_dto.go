package dto

import "github.com/rightchoice/medicare-api/internal/domain/entity"

type CreateSupplierRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	PaymentTerms string `json:"payment_terms"`
}

type SupplierResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	PaymentTerms string `json:"payment_terms"`
	IsActive     bool   `json:"is_active"`
}

func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		GSTIN:        s.GSTIN,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		PaymentTerms: s.PaymentTerms,
		IsActive:     s.IsActive,
	}
}
