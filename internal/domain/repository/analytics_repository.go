package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem is a stock position at or below its minimum level.
type LowStockItem struct {
	ItemID       string
	ItemName     string
	CurrentStock decimal.Decimal
	MinLevel     decimal.Decimal
}

// DashboardSummary aggregates the company's key metrics.
type DashboardSummary struct {
	TotalCustomers        int
	TotalSuppliers        int
	TotalItems            int
	PendingSalesOrders    int
	PendingPurchaseOrders int
	OverdueInvoices       int
	LowStockItems         []LowStockItem
}

// AnalyticsRepository runs the dashboard aggregation queries.
type AnalyticsRepository interface {
	Summary(companyID string, now time.Time) (*DashboardSummary, error)
}
