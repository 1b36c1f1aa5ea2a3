package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type SalesOrderItemRequest struct {
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateSalesOrderRequest struct {
	CustomerID   string                  `json:"customer_id"`
	LocationID   string                  `json:"location_id"`
	DeliveryDate *time.Time              `json:"delivery_date"`
	Notes        string                  `json:"notes"`
	Items        []SalesOrderItemRequest `json:"items"`
}

type SalesOrderItemResponse struct {
	ItemID            string          `json:"item_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	GSTRate           decimal.Decimal `json:"gst_rate"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	FulfilledQuantity decimal.Decimal `json:"fulfilled_quantity"`
}

type SalesOrderResponse struct {
	ID           string                   `json:"id"`
	CustomerID   string                   `json:"customer_id"`
	LocationID   string                   `json:"location_id"`
	SONumber     string                   `json:"so_number"`
	SODate       time.Time                `json:"so_date"`
	DeliveryDate *time.Time               `json:"delivery_date,omitempty"`
	Items        []SalesOrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal          `json:"subtotal"`
	GSTAmount    decimal.Decimal          `json:"gst_amount"`
	TotalAmount  decimal.Decimal          `json:"total_amount"`
	Status       string                   `json:"status"`
	Notes        string                   `json:"notes,omitempty"`
}

func ToSalesOrderResponse(so *entity.SalesOrder) SalesOrderResponse {
	items := make([]SalesOrderItemResponse, len(so.Items))
	for i, it := range so.Items {
		items[i] = SalesOrderItemResponse{
			ItemID:            it.ItemID,
			Quantity:          it.Quantity,
			UnitPrice:         it.UnitPrice,
			GSTRate:           it.GSTRate,
			TotalAmount:       it.TotalAmount,
			FulfilledQuantity: it.FulfilledQuantity,
		}
	}
	return SalesOrderResponse{
		ID:           so.ID,
		CustomerID:   so.CustomerID,
		LocationID:   so.LocationID,
		SONumber:     so.SONumber,
		SODate:       so.SODate,
		DeliveryDate: so.DeliveryDate,
		Items:        items,
		Subtotal:     so.Subtotal,
		GSTAmount:    so.GSTAmount,
		TotalAmount:  so.TotalAmount,
		Status:       string(so.Status),
		Notes:        so.Notes,
	}
}

type InvoiceItemRequest struct {
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	SOID       string               `json:"so_id"`
	DueDate    *time.Time           `json:"due_date"`
	Notes      string               `json:"notes"`
	Items      []InvoiceItemRequest `json:"items"`
}

type InvoiceItemResponse struct {
	ItemID      string          `json:"item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	IGSTAmount  decimal.Decimal `json:"igst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customer_id"`
	SOID          string                `json:"so_id,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	InvoiceDate   time.Time             `json:"invoice_date"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TotalCGST     decimal.Decimal       `json:"total_cgst"`
	TotalSGST     decimal.Decimal       `json:"total_sgst"`
	TotalIGST     decimal.Decimal       `json:"total_igst"`
	TotalGST      decimal.Decimal       `json:"total_gst"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	PaidAmount    decimal.Decimal       `json:"paid_amount"`
	BalanceAmount decimal.Decimal       `json:"balance_amount"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
}

func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ItemID:      it.ItemID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			GSTRate:     it.GSTRate,
			CGSTAmount:  it.CGSTAmount,
			SGSTAmount:  it.SGSTAmount,
			IGSTAmount:  it.IGSTAmount,
			TotalAmount: it.TotalAmount,
		}
	}
	return InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		SOID:          inv.SOID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Items:         items,
		Subtotal:      inv.Subtotal,
		TotalCGST:     inv.TotalCGST,
		TotalSGST:     inv.TotalSGST,
		TotalIGST:     inv.TotalIGST,
		TotalGST:      inv.TotalGST,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		BalanceAmount: inv.BalanceAmount,
		Status:        string(inv.Status),
		Notes:         inv.Notes,
	}
}
