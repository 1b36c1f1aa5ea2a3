// Package status holds the shared document state machine. Purchase orders,
// sales orders, GRNs and invoices all derive their status from accumulated
// quantities/amounts through the helpers here instead of duplicating the
// branching per document type.
package status

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the lifecycle state of a purchase or sales order. The two document
// types share the same structure and differ only in the names of the partial
// and terminal states.
type Order string

const (
	OrderDraft              Order = "draft"
	OrderPending            Order = "pending"
	OrderApproved           Order = "approved"
	OrderPartiallyReceived  Order = "partially_received"
	OrderReceived           Order = "received"
	OrderPartiallyFulfilled Order = "partially_fulfilled"
	OrderFulfilled          Order = "fulfilled"
	OrderCancelled          Order = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s Order) IsTerminal() bool {
	return s == OrderReceived || s == OrderFulfilled || s == OrderCancelled
}

// CanTransition reports whether a user-driven transition from -> to is legal.
// Partial and terminal states are derived from quantities, not user-set, so
// they are only reachable through DeriveOrder; cancellation is allowed from
// any non-terminal state.
func CanTransition(from, to Order) bool {
	if from.IsTerminal() {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	switch from {
	case OrderDraft:
		return to == OrderPending
	case OrderPending:
		return to == OrderApproved
	}
	return false
}

// LineProgress is the ordered vs satisfied quantity of one document line.
type LineProgress struct {
	Ordered   decimal.Decimal
	Satisfied decimal.Decimal
}

// DeriveOrder computes the quantity-driven state of an approved order:
// every line fully satisfied -> terminal, any progress -> partial, otherwise
// the current state is kept.
func DeriveOrder(current Order, lines []LineProgress, partial, terminal Order) Order {
	if len(lines) == 0 {
		return current
	}
	allDone := true
	anyProgress := false
	for _, l := range lines {
		if l.Satisfied.GreaterThan(decimal.Zero) {
			anyProgress = true
		}
		if l.Satisfied.LessThan(l.Ordered) {
			allDone = false
		}
	}
	switch {
	case allDone:
		return terminal
	case anyProgress:
		return partial
	default:
		return current
	}
}

// GRN is the receipt completeness state of a goods received note.
type GRN string

const (
	GRNPending  GRN = "pending"
	GRNPartial  GRN = "partial"
	GRNComplete GRN = "complete"
)

// DeriveGRN compares received against ordered quantities across lines.
func DeriveGRN(lines []LineProgress) GRN {
	allDone := len(lines) > 0
	anyProgress := false
	for _, l := range lines {
		if l.Satisfied.GreaterThan(decimal.Zero) {
			anyProgress = true
		}
		if l.Satisfied.LessThan(l.Ordered) {
			allDone = false
		}
	}
	switch {
	case allDone:
		return GRNComplete
	case anyProgress:
		return GRNPartial
	default:
		return GRNPending
	}
}

// Invoice is the payment state of an invoice.
type Invoice string

const (
	InvoiceDraft         Invoice = "draft"
	InvoicePending       Invoice = "pending"
	InvoicePartiallyPaid Invoice = "partially_paid"
	InvoicePaid          Invoice = "paid"
	InvoiceOverdue       Invoice = "overdue"
	InvoiceCancelled     Invoice = "cancelled"
)

// DeriveInvoice computes the payment state from paid vs total and the due
// date. Overdue only applies while a balance remains and the due date has
// passed; a fully paid invoice is paid regardless of the due date.
func DeriveInvoice(total, paid decimal.Decimal, dueDate *time.Time, now time.Time) Invoice {
	if paid.GreaterThanOrEqual(total) {
		return InvoicePaid
	}
	if dueDate != nil && now.After(*dueDate) {
		return InvoiceOverdue
	}
	if paid.GreaterThan(decimal.Zero) {
		return InvoicePartiallyPaid
	}
	return InvoicePending
}
