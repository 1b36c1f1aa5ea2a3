// Package gst implements the GST split rules for invoicing: intra-state sales
// split the tax into equal CGST and SGST halves, inter-state sales charge IGST.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IntraState reports whether supplier and buyer are in the same state
// (case-insensitive, whitespace-trimmed).
func IntraState(companyState, customerState string) bool {
	a := strings.ToLower(strings.TrimSpace(companyState))
	b := strings.ToLower(strings.TrimSpace(customerState))
	return a != "" && a == b
}

// Split computes the GST components for a taxable amount at ratePct (a
// percentage, e.g. 12 for 12%). Intra-state: CGST = SGST = half the tax, with
// SGST absorbing the rounding remainder so CGST+SGST equals the full tax.
// Inter-state: the full tax is IGST. Amounts are rounded to 2 decimals.
func Split(taxable, ratePct decimal.Decimal, intraState bool) (cgst, sgst, igst decimal.Decimal) {
	tax := taxable.Mul(ratePct).Div(hundred).Round(2)
	if !intraState {
		return decimal.Zero, decimal.Zero, tax
	}
	cgst = tax.Div(decimal.NewFromInt(2)).Round(2)
	sgst = tax.Sub(cgst)
	return cgst, sgst, decimal.Zero
}
