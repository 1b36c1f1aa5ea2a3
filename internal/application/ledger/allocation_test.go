package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

func stockRow(id string, qty float64, updated time.Time) *entity.Stock {
	return &entity.Stock{
		ID:          id,
		CompanyID:   "co-1",
		ItemID:      "item-1",
		LocationID:  "loc-1",
		Quantity:    decimal.NewFromFloat(qty),
		LastUpdated: updated,
	}
}

func TestPlanIssue(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := ledger.PlanIssue([]*entity.Stock{stockRow("s1", 10, t0)}, decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = ledger.PlanIssue([]*entity.Stock{stockRow("s1", 10, t0)}, decimal.NewFromInt(-3))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("oldest row first", func(t *testing.T) {
		rows := []*entity.Stock{stockRow("s2", 10, t1), stockRow("s1", 5, t0)}
		plan, err := ledger.PlanIssue(rows, decimal.NewFromInt(8))
		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.Equal(t, "s1", plan[0].Stock.ID)
		assert.True(t, plan[0].Quantity.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, "s2", plan[1].Stock.ID)
		assert.True(t, plan[1].Quantity.Equal(decimal.NewFromInt(3)))
	})

	t.Run("ties break by id ascending", func(t *testing.T) {
		rows := []*entity.Stock{stockRow("s9", 4, t0), stockRow("s2", 4, t0)}
		plan, err := ledger.PlanIssue(rows, decimal.NewFromInt(6))
		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.Equal(t, "s2", plan[0].Stock.ID)
		assert.Equal(t, "s9", plan[1].Stock.ID)
	})

	t.Run("skips empty rows", func(t *testing.T) {
		rows := []*entity.Stock{stockRow("s1", 0, t0), stockRow("s2", 7, t1)}
		plan, err := ledger.PlanIssue(rows, decimal.NewFromInt(7))
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, "s2", plan[0].Stock.ID)
	})

	t.Run("exact fit stops at first row", func(t *testing.T) {
		rows := []*entity.Stock{stockRow("s1", 5, t0), stockRow("s2", 10, t1)}
		plan, err := ledger.PlanIssue(rows, decimal.NewFromInt(5))
		require.NoError(t, err)
		require.Len(t, plan, 1)
	})

	t.Run("insufficient total fails without plan", func(t *testing.T) {
		rows := []*entity.Stock{stockRow("s1", 5, t0), stockRow("s2", 2, t1)}
		plan, err := ledger.PlanIssue(rows, decimal.NewFromInt(8))
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Nil(t, plan)
	})

	t.Run("deterministic for equal input", func(t *testing.T) {
		rows := func() []*entity.Stock {
			return []*entity.Stock{stockRow("s3", 6, t1), stockRow("s1", 2, t0), stockRow("s2", 9, t0)}
		}
		first, err := ledger.PlanIssue(rows(), decimal.NewFromInt(12))
		require.NoError(t, err)
		second, err := ledger.PlanIssue(rows(), decimal.NewFromInt(12))
		require.NoError(t, err)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Stock.ID, second[i].Stock.ID)
			assert.True(t, first[i].Quantity.Equal(second[i].Quantity))
		}
	})
}
