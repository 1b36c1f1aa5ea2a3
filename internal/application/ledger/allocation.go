package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

// Deduction is one planned draw-down against a stock row.
type Deduction struct {
	Stock    *entity.Stock
	Quantity decimal.Decimal
}

// PlanIssue computes the FIFO allocation plan for issuing the requested
// quantity from the given stock rows: oldest-touched rows first (last_updated
// ascending, id ascending on ties), greedy deduction until satisfied. Rows
// without positive quantity are skipped. The plan is computed without mutating
// anything; when the total available falls short the call fails with
// ErrInsufficientStock and the caller must not apply any partial deduction.
func PlanIssue(rows []*entity.Stock, requested decimal.Decimal) ([]Deduction, error) {
	if !requested.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	candidates := make([]*entity.Stock, 0, len(rows))
	for _, s := range rows {
		if s.Quantity.GreaterThan(decimal.Zero) {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].LastUpdated.Equal(candidates[j].LastUpdated) {
			return candidates[i].ID < candidates[j].ID
		}
		return candidates[i].LastUpdated.Before(candidates[j].LastUpdated)
	})

	remaining := requested
	plan := make([]Deduction, 0, len(candidates))
	for _, s := range candidates {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		take := decimal.Min(remaining, s.Quantity)
		plan = append(plan, Deduction{Stock: s, Quantity: take})
		remaining = remaining.Sub(take)
	}
	if remaining.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInsufficientStock
	}
	return plan, nil
}
