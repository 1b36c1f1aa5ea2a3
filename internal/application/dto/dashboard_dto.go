package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

type LowStockItemResponse struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinLevel     decimal.Decimal `json:"min_level"`
}

type DashboardSummaryResponse struct {
	TotalCustomers        int                    `json:"total_customers"`
	TotalSuppliers        int                    `json:"total_suppliers"`
	TotalItems            int                    `json:"total_items"`
	PendingSalesOrders    int                    `json:"pending_sales_orders"`
	PendingPurchaseOrders int                    `json:"pending_purchase_orders"`
	OverdueInvoices       int                    `json:"overdue_invoices"`
	LowStockItems         []LowStockItemResponse `json:"low_stock_items"`
}

func ToDashboardSummaryResponse(s *repository.DashboardSummary) DashboardSummaryResponse {
	low := make([]LowStockItemResponse, len(s.LowStockItems))
	for i, it := range s.LowStockItems {
		low[i] = LowStockItemResponse{
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			CurrentStock: it.CurrentStock,
			MinLevel:     it.MinLevel,
		}
	}
	return DashboardSummaryResponse{
		TotalCustomers:        s.TotalCustomers,
		TotalSuppliers:        s.TotalSuppliers,
		TotalItems:            s.TotalItems,
		PendingSalesOrders:    s.PendingSalesOrders,
		PendingPurchaseOrders: s.PendingPurchaseOrders,
		OverdueInvoices:       s.OverdueInvoices,
		LowStockItems:         low,
	}
}
