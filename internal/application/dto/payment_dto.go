package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type RecordPaymentRequest struct {
	InvoiceID        string          `json:"invoice_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMode      string          `json:"payment_mode"`
	ReferenceNumber  string          `json:"reference_number"`
	GatewayPaymentID string          `json:"gateway_payment_id"`
	Notes            string          `json:"notes"`
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	InvoiceID        string          `json:"invoice_id"`
	CustomerID       string          `json:"customer_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMode      string          `json:"payment_mode"`
	PaymentDate      time.Time       `json:"payment_date"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
}

func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		InvoiceID:        p.InvoiceID,
		CustomerID:       p.CustomerID,
		Amount:           p.Amount,
		PaymentMode:      p.PaymentMode,
		PaymentDate:      p.PaymentDate,
		ReferenceNumber:  p.ReferenceNumber,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           p.Status,
		Notes:            p.Notes,
	}
}

type CreatePaymentOrderRequest struct {
	InvoiceID string `json:"invoice_id"`
}

type PaymentOrderResponse struct {
	OrderID   string          `json:"order_id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
}
