// Package calculation provides saved price-calculator results.
package calculation

import (
	"context"

	"github.com/shopspring/decimal"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
	"hardpos/internal/core/id"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/ledger"
	"hardpos/internal/domain/pricing"
)

// DefaultTaxPercent is the standard GST rate preselected on the calculator.
var DefaultTaxPercent = decimal.NewFromInt(18)

// GSTRates lists the selectable GST slabs, in percent.
var GSTRates = []int64{0, 5, 12, 18, 28}

// Calculation is a saved price-calculator result: the material list plus the
// full pricing breakdown at save time. The breakdown fields mirror
// pricing.Result and are derived once on save; they are never edited.
type Calculation struct {
	entity.Base

	// Number is the human-readable reference (CALC-2026-00001).
	Number string `db:"number" json:"number"`

	Subtotal        types.Money     `db:"subtotal" json:"subtotal"`
	DiscountPercent types.Percent   `db:"discount_percent" json:"discountPercent"`
	DiscountAmount  types.Money     `db:"discount_amount" json:"discountAmount"`
	TaxableAmount   types.Money     `db:"taxable_amount" json:"taxableAmount"`
	TaxPercent      types.Percent   `db:"tax_percent" json:"taxPercent"`
	TaxAmount       types.Money     `db:"tax_amount" json:"taxAmount"`
	FinalTotal      types.Money     `db:"final_total" json:"finalTotal"`
	TotalQuantity   decimal.Decimal `db:"total_quantity" json:"totalQuantity"`

	// Table part: calculated lines, in ledger order.
	Lines []Line `db:"-" json:"lines"`
}

// Line is a single calculated row. Unlike bill lines, calculator lines carry
// a unit-of-measure.
type Line struct {
	LineID        id.ID           `db:"line_id" json:"lineId"`
	CalculationID id.ID           `db:"calculation_id" json:"-"`
	LineNo        int             `db:"line_no" json:"lineNo"`
	Name          string          `db:"name" json:"name"`
	Unit          ledger.Unit     `db:"unit" json:"unit"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice     types.Money     `db:"unit_price" json:"unitPrice"`
	LineTotal     types.Money     `db:"line_total" json:"lineTotal"`
}

// NewCalculation snapshots the calculator's ledger with the chosen discount
// and tax. Only complete rows are kept; the pricing breakdown is computed
// from the kept lines' subtotal via the pricing engine.
func NewCalculation(led ledger.Ledger, discountPercent, taxPercent types.Percent) *Calculation {
	c := &Calculation{
		Base:          entity.NewBase(),
		TotalQuantity: decimal.Zero,
		Lines:         make([]Line, 0),
	}

	subtotal := types.Zero()
	for _, it := range led.Items() {
		if !it.IsComplete() {
			continue
		}
		line := Line{
			LineID:        id.New(),
			CalculationID: c.ID,
			LineNo:        len(c.Lines) + 1,
			Name:          it.Name,
			Unit:          it.Unit,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			LineTotal:     it.LineTotal,
		}
		c.Lines = append(c.Lines, line)
		subtotal = subtotal.Add(line.LineTotal)
		c.TotalQuantity = c.TotalQuantity.Add(line.Quantity)
	}

	c.apply(pricing.Compute(subtotal, discountPercent, taxPercent))
	return c
}

func (c *Calculation) apply(r pricing.Result) {
	c.Subtotal = r.Subtotal
	c.DiscountPercent = r.DiscountPercent
	c.DiscountAmount = r.DiscountAmount
	c.TaxableAmount = r.TaxableAmount
	c.TaxPercent = r.TaxPercent
	c.TaxAmount = r.TaxAmount
	c.FinalTotal = r.FinalTotal
}

// Result rebuilds the pricing breakdown view of this calculation.
func (c *Calculation) Result() pricing.Result {
	return pricing.Result{
		Subtotal:        c.Subtotal,
		DiscountPercent: c.DiscountPercent,
		DiscountAmount:  c.DiscountAmount,
		TaxableAmount:   c.TaxableAmount,
		TaxPercent:      c.TaxPercent,
		TaxAmount:       c.TaxAmount,
		FinalTotal:      c.FinalTotal,
	}
}

// Validate implements entity.Validatable: at least one complete line.
// No customer is required for a calculation.
func (c *Calculation) Validate(ctx context.Context) error {
	if len(c.Lines) == 0 {
		return apperror.NewNoValidItems()
	}
	return nil
}
