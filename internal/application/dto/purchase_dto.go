package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type PurchaseOrderItemRequest struct {
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID       string                     `json:"supplier_id"`
	LocationID       string                     `json:"location_id"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery"`
	Notes            string                     `json:"notes"`
	Items            []PurchaseOrderItemRequest `json:"items"`
}

type PurchaseOrderItemResponse struct {
	ItemID           string          `json:"item_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	GSTRate          decimal.Decimal `json:"gst_rate"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
}

type PurchaseOrderResponse struct {
	ID               string                      `json:"id"`
	SupplierID       string                      `json:"supplier_id"`
	LocationID       string                      `json:"location_id"`
	PONumber         string                      `json:"po_number"`
	PODate           time.Time                   `json:"po_date"`
	ExpectedDelivery *time.Time                  `json:"expected_delivery,omitempty"`
	Items            []PurchaseOrderItemResponse `json:"items"`
	Subtotal         decimal.Decimal             `json:"subtotal"`
	GSTAmount        decimal.Decimal             `json:"gst_amount"`
	TotalAmount      decimal.Decimal             `json:"total_amount"`
	Status           string                      `json:"status"`
	Notes            string                      `json:"notes,omitempty"`
}

func ToPurchaseOrderResponse(po *entity.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i, it := range po.Items {
		items[i] = PurchaseOrderItemResponse{
			ItemID:           it.ItemID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			GSTRate:          it.GSTRate,
			TotalAmount:      it.TotalAmount,
			ReceivedQuantity: it.ReceivedQuantity,
		}
	}
	return PurchaseOrderResponse{
		ID:               po.ID,
		SupplierID:       po.SupplierID,
		LocationID:       po.LocationID,
		PONumber:         po.PONumber,
		PODate:           po.PODate,
		ExpectedDelivery: po.ExpectedDelivery,
		Items:            items,
		Subtotal:         po.Subtotal,
		GSTAmount:        po.GSTAmount,
		TotalAmount:      po.TotalAmount,
		Status:           string(po.Status),
		Notes:            po.Notes,
	}
}

type GRNItemRequest struct {
	ItemID            string          `json:"item_id"`
	ReceivedQuantity  decimal.Decimal `json:"received_quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	BatchNumber       string          `json:"batch_number"`
	ManufacturingDate *time.Time      `json:"manufacturing_date"`
	ExpiryDate        *time.Time      `json:"expiry_date"`
}

type CreateGRNRequest struct {
	POID  string           `json:"po_id"`
	Notes string           `json:"notes"`
	Items []GRNItemRequest `json:"items"`
}

type GRNItemResponse struct {
	ItemID            string          `json:"item_id"`
	OrderedQuantity   decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity  decimal.Decimal `json:"received_quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	BatchNumber       string          `json:"batch_number,omitempty"`
	ManufacturingDate *time.Time      `json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
}

type GRNResponse struct {
	ID         string            `json:"id"`
	POID       string            `json:"po_id"`
	SupplierID string            `json:"supplier_id"`
	LocationID string            `json:"location_id"`
	GRNNumber  string            `json:"grn_number"`
	GRNDate    time.Time         `json:"grn_date"`
	Items      []GRNItemResponse `json:"items"`
	Status     string            `json:"status"`
	Notes      string            `json:"notes,omitempty"`
}

func ToGRNResponse(g *entity.GRN) GRNResponse {
	items := make([]GRNItemResponse, len(g.Items))
	for i, it := range g.Items {
		items[i] = GRNItemResponse{
			ItemID:            it.ItemID,
			OrderedQuantity:   it.OrderedQuantity,
			ReceivedQuantity:  it.ReceivedQuantity,
			UnitPrice:         it.UnitPrice,
			BatchNumber:       it.BatchNumber,
			ManufacturingDate: it.ManufacturingDate,
			ExpiryDate:        it.ExpiryDate,
		}
	}
	return GRNResponse{
		ID:         g.ID,
		POID:       g.POID,
		SupplierID: g.SupplierID,
		LocationID: g.LocationID,
		GRNNumber:  g.GRNNumber,
		GRNDate:    g.GRNDate,
		Items:      items,
		Status:     string(g.Status),
		Notes:      g.Notes,
	}
}
