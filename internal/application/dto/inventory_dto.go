package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type StockResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	LocationID       string          `json:"location_id"`
	BatchID          string          `json:"batch_id,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
	LastUpdated      time.Time       `json:"last_updated"`
}

func ToStockResponse(s *entity.Stock) StockResponse {
	return StockResponse{
		ID:               s.ID,
		ItemID:           s.ItemID,
		LocationID:       s.LocationID,
		BatchID:          s.BatchID,
		Quantity:         s.Quantity,
		ReservedQuantity: s.ReservedQuantity,
		LastUpdated:      s.LastUpdated,
	}
}

type BatchResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	LocationID        string          `json:"location_id"`
	BatchNumber       string          `json:"batch_number"`
	ManufacturingDate *time.Time      `json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	QuantityReceived  decimal.Decimal `json:"quantity_received"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	IsActive          bool            `json:"is_active"`
}

func ToBatchResponse(b *entity.Batch) BatchResponse {
	return BatchResponse{
		ID:                b.ID,
		ItemID:            b.ItemID,
		LocationID:        b.LocationID,
		BatchNumber:       b.BatchNumber,
		ManufacturingDate: b.ManufacturingDate,
		ExpiryDate:        b.ExpiryDate,
		PurchaseDate:      b.PurchaseDate,
		PurchasePrice:     b.PurchasePrice,
		QuantityReceived:  b.QuantityReceived,
		QuantityAvailable: b.QuantityAvailable,
		SupplierID:        b.SupplierID,
		IsActive:          b.IsActive,
	}
}

type MovementResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	LocationID    string          `json:"location_id"`
	BatchID       string          `json:"batch_id,omitempty"`
	MovementType  string          `json:"movement_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	ReferenceType string          `json:"reference_type,omitempty"`
	MovementDate  time.Time       `json:"movement_date"`
	CreatedBy     string          `json:"created_by"`
}

func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		LocationID:    m.LocationID,
		BatchID:       m.BatchID,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType,
		MovementDate:  m.MovementDate,
		CreatedBy:     m.CreatedBy,
	}
}

type AdjustStockRequest struct {
	ItemID     string          `json:"item_id"`
	LocationID string          `json:"location_id"`
	BatchID    string          `json:"batch_id"`
	Delta      decimal.Decimal `json:"delta"`
	Reason     string          `json:"reason"`
}

type TransferStockRequest struct {
	ItemID         string          `json:"item_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	BatchID        string          `json:"batch_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}
