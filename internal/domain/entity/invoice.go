package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// InvoiceItem is one billed line with its GST breakdown. Either CGST+SGST
// (intra-state) or IGST (inter-state) is non-zero, never both.
type InvoiceItem struct {
	ItemID      string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	GSTRate     decimal.Decimal
	CGSTAmount  decimal.Decimal
	SGSTAmount  decimal.Decimal
	IGSTAmount  decimal.Decimal
	TotalAmount decimal.Decimal
}

// Invoice is a billing document. Issuing an invoice debits stock (FIFO
// allocation across lots). Invariant: BalanceAmount = TotalAmount - PaidAmount.
type Invoice struct {
	ID            string
	CompanyID     string
	CustomerID    string
	SOID          string
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       *time.Time
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	TotalCGST     decimal.Decimal
	TotalSGST     decimal.Decimal
	TotalIGST     decimal.Decimal
	TotalGST      decimal.Decimal
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        status.Invoice
	PaymentTerms  string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
