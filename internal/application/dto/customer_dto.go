package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type CreateCustomerRequest struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	GSTIN           string          `json:"gstin"`
	BillingAddress  string          `json:"billing_address"`
	ShippingAddress string          `json:"shipping_address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Pincode         string          `json:"pincode"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CreditDays      int             `json:"credit_days"`
}

type CustomerResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	GSTIN           string          `json:"gstin"`
	BillingAddress  string          `json:"billing_address"`
	ShippingAddress string          `json:"shipping_address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Pincode         string          `json:"pincode"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CreditDays      int             `json:"credit_days"`
	IsActive        bool            `json:"is_active"`
}

func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		GSTIN:           c.GSTIN,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		City:            c.City,
		State:           c.State,
		Pincode:         c.Pincode,
		CreditLimit:     c.CreditLimit,
		CreditDays:      c.CreditDays,
		IsActive:        c.IsActive,
	}
}
