// Package pricing computes discount, tax and final totals for a ledger subtotal.
package pricing

import (
	"github.com/shopspring/decimal"

	"hardpos/internal/core/types"
)

// hundred is the percent divisor.
var hundred = decimal.NewFromInt(100)

// Result holds a full pricing breakdown. All derived fields are pure
// functions of (Subtotal, DiscountPercent, TaxPercent); none is
// independently mutable.
//
// Invariants: TaxableAmount = Subtotal - DiscountAmount and
// FinalTotal = TaxableAmount + TaxAmount. FinalTotal >= 0 whenever the
// subtotal is non-negative and both percentages are in [0,100].
type Result struct {
	Subtotal        types.Money   `json:"subtotal"`
	DiscountPercent types.Percent `json:"discountPercent"`
	DiscountAmount  types.Money   `json:"discountAmount"`
	TaxableAmount   types.Money   `json:"taxableAmount"`
	TaxPercent      types.Percent `json:"taxPercent"`
	TaxAmount       types.Money   `json:"taxAmount"`
	FinalTotal      types.Money   `json:"finalTotal"`
}

// Compute derives the pricing breakdown:
//
//	discountAmount = subtotal * discountPercent / 100
//	taxableAmount  = subtotal - discountAmount
//	taxAmount      = taxableAmount * taxPercent / 100
//	finalTotal     = taxableAmount + taxAmount
//
// No rounding is applied; two-decimal display formatting is the caller's
// concern and must not feed back into stored values.
//
// Percentages outside [0,100] are not rejected here. Callers are expected to
// clamp form input to [0,100] before calling; a negative taxable amount is
// mathematically permitted but should be surfaced as a display warning, not
// silently shown as currency.
func Compute(subtotal types.Money, discountPercent, taxPercent types.Percent) Result {
	discountAmount := subtotal.Mul(discountPercent).Div(hundred)
	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(taxPercent).Div(hundred)

	return Result{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		TaxableAmount:   taxableAmount,
		TaxPercent:      taxPercent,
		TaxAmount:       taxAmount,
		FinalTotal:      taxableAmount.Add(taxAmount),
	}
}
