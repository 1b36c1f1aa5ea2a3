package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rightchoice/medicare-api/internal/domain/repository"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo runs the dashboard aggregations directly in SQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Summary gathers the company's dashboard metrics as of now.
func (r *AnalyticsRepo) Summary(companyID string, now time.Time) (*repository.DashboardSummary, error) {
	ctx := context.Background()
	var s repository.DashboardSummary

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM customers WHERE company_id = $1),
			(SELECT COUNT(*) FROM suppliers WHERE company_id = $1),
			(SELECT COUNT(*) FROM items WHERE company_id = $1 AND is_active),
			(SELECT COUNT(*) FROM sales_orders WHERE company_id = $1 AND status IN ($2, $3)),
			(SELECT COUNT(*) FROM purchase_orders WHERE company_id = $1 AND status IN ($2, $3)),
			(SELECT COUNT(*) FROM invoices
				WHERE company_id = $1 AND due_date < $4 AND balance_amount > 0
				AND status NOT IN ($5, $6))`
	err := r.q.QueryRow(ctx, countsQuery, companyID,
		status.OrderDraft, status.OrderPending, now,
		status.InvoicePaid, status.InvoiceCancelled,
	).Scan(&s.TotalCustomers, &s.TotalSuppliers, &s.TotalItems,
		&s.PendingSalesOrders, &s.PendingPurchaseOrders, &s.OverdueInvoices)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	lowStockQuery := `
		SELECT i.id, i.name, COALESCE(SUM(s.quantity), 0) AS current_stock, i.min_stock_level
		FROM items i
		LEFT JOIN stock s ON s.item_id = i.id AND s.company_id = i.company_id
		WHERE i.company_id = $1 AND i.is_active AND i.min_stock_level > 0
		GROUP BY i.id, i.name, i.min_stock_level
		HAVING COALESCE(SUM(s.quantity), 0) <= i.min_stock_level
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, lowStockQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var li repository.LowStockItem
		if err := rows.Scan(&li.ItemID, &li.ItemName, &li.CurrentStock, &li.MinLevel); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		s.LowStockItems = append(s.LowStockItems, li)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}
