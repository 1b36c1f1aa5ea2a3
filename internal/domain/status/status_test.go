package status

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lines(pairs ...float64) []LineProgress {
	out := make([]LineProgress, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, LineProgress{
			Ordered:   decimal.NewFromFloat(pairs[i]),
			Satisfied: decimal.NewFromFloat(pairs[i+1]),
		})
	}
	return out
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Order
		to   Order
		want bool
	}{
		{"draft to pending", OrderDraft, OrderPending, true},
		{"pending to approved", OrderPending, OrderApproved, true},
		{"draft skips to approved", OrderDraft, OrderApproved, false},
		{"pending cancellable", OrderPending, OrderCancelled, true},
		{"approved cancellable", OrderApproved, OrderCancelled, true},
		{"partial cancellable", OrderPartiallyReceived, OrderCancelled, true},
		{"received is final", OrderReceived, OrderCancelled, false},
		{"fulfilled is final", OrderFulfilled, OrderPending, false},
		{"cancelled is final", OrderCancelled, OrderPending, false},
		{"partial not user-settable", OrderApproved, OrderPartiallyReceived, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestDeriveOrder(t *testing.T) {
	t.Run("no receipts keeps current", func(t *testing.T) {
		got := DeriveOrder(OrderApproved, lines(10, 0, 5, 0), OrderPartiallyReceived, OrderReceived)
		assert.Equal(t, OrderApproved, got)
	})
	t.Run("some receipts is partial", func(t *testing.T) {
		got := DeriveOrder(OrderApproved, lines(10, 4, 5, 0), OrderPartiallyReceived, OrderReceived)
		assert.Equal(t, OrderPartiallyReceived, got)
	})
	t.Run("one line done still partial", func(t *testing.T) {
		got := DeriveOrder(OrderApproved, lines(10, 10, 5, 0), OrderPartiallyReceived, OrderReceived)
		assert.Equal(t, OrderPartiallyReceived, got)
	})
	t.Run("all lines done is terminal", func(t *testing.T) {
		got := DeriveOrder(OrderApproved, lines(10, 10, 5, 5), OrderPartiallyFulfilled, OrderFulfilled)
		assert.Equal(t, OrderFulfilled, got)
	})
	t.Run("no lines keeps current", func(t *testing.T) {
		got := DeriveOrder(OrderApproved, nil, OrderPartiallyReceived, OrderReceived)
		assert.Equal(t, OrderApproved, got)
	})
}

func TestDeriveGRN(t *testing.T) {
	assert.Equal(t, GRNPending, DeriveGRN(lines(10, 0)))
	assert.Equal(t, GRNPartial, DeriveGRN(lines(10, 4)))
	assert.Equal(t, GRNComplete, DeriveGRN(lines(10, 10, 5, 5)))
}

func TestDeriveInvoice(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)
	total := decimal.NewFromInt(1000)

	t.Run("unpaid is pending", func(t *testing.T) {
		assert.Equal(t, InvoicePending, DeriveInvoice(total, decimal.Zero, &future, now))
	})
	t.Run("partial payment", func(t *testing.T) {
		assert.Equal(t, InvoicePartiallyPaid, DeriveInvoice(total, decimal.NewFromInt(400), &future, now))
	})
	t.Run("fully paid", func(t *testing.T) {
		assert.Equal(t, InvoicePaid, DeriveInvoice(total, total, &future, now))
	})
	t.Run("paid beats overdue", func(t *testing.T) {
		assert.Equal(t, InvoicePaid, DeriveInvoice(total, total, &past, now))
	})
	t.Run("overdue with balance", func(t *testing.T) {
		assert.Equal(t, InvoiceOverdue, DeriveInvoice(total, decimal.NewFromInt(400), &past, now))
	})
	t.Run("no due date never overdue", func(t *testing.T) {
		assert.Equal(t, InvoicePartiallyPaid, DeriveInvoice(total, decimal.NewFromInt(400), nil, now))
	})

	// total 1000, payments of 400 then 600: pending -> partially_paid -> paid.
	t.Run("balance scenario", func(t *testing.T) {
		paid := decimal.Zero
		assert.Equal(t, InvoicePending, DeriveInvoice(total, paid, &future, now))
		paid = paid.Add(decimal.NewFromInt(400))
		assert.Equal(t, InvoicePartiallyPaid, DeriveInvoice(total, paid, &future, now))
		paid = paid.Add(decimal.NewFromInt(600))
		assert.Equal(t, InvoicePaid, DeriveInvoice(total, paid, &future, now))
		assert.True(t, total.Sub(paid).IsZero())
	})
}
