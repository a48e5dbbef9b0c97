// Package billing provides the customer bill document.
package billing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
	"hardpos/internal/core/id"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/ledger"
)

// Bill is a finalized customer bill. The bill form applies no discount or
// tax, so the grand total equals the subtotal; the price calculator is the
// surface that layers discount and GST on top (see the calculation package).
type Bill struct {
	entity.Base

	// Number is the human-readable bill number (BILL-2026-00001).
	Number string `db:"number" json:"number"`

	CustomerName  string `db:"customer_name" json:"customerName"`
	CustomerPhone string `db:"customer_phone" json:"customerPhone,omitempty"`

	// Totals (calculated from lines)
	Subtotal      types.Money     `db:"subtotal" json:"subtotal"`
	TotalQuantity decimal.Decimal `db:"total_quantity" json:"totalQuantity"`

	// Table part: billed lines, in ledger order.
	Lines []Line `db:"-" json:"lines"`
}

// Line is a single billed row.
type Line struct {
	LineID    id.ID           `db:"line_id" json:"lineId"`
	BillID    id.ID           `db:"bill_id" json:"-"`
	LineNo    int             `db:"line_no" json:"lineNo"`
	Name      string          `db:"name" json:"name"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice types.Money     `db:"unit_price" json:"unitPrice"`
	LineTotal types.Money     `db:"line_total" json:"lineTotal"`
}

// NewBill builds a bill from the form's ledger. Only complete rows (name,
// quantity > 0, price > 0) are carried onto the bill; blank editing rows
// stay behind in the form. Totals are recomputed from the kept lines.
func NewBill(customerName, customerPhone string, led ledger.Ledger) *Bill {
	b := &Bill{
		Base:          entity.NewBase(),
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: strings.TrimSpace(customerPhone),
		Subtotal:      types.Zero(),
		TotalQuantity: decimal.Zero,
		Lines:         make([]Line, 0),
	}

	for _, it := range led.Items() {
		if !it.IsComplete() {
			continue
		}
		b.addLine(it)
	}
	return b
}

func (b *Bill) addLine(it ledger.LineItem) {
	line := Line{
		LineID:    id.New(),
		BillID:    b.ID,
		LineNo:    len(b.Lines) + 1,
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		LineTotal: it.LineTotal,
	}
	b.Lines = append(b.Lines, line)
	b.Subtotal = b.Subtotal.Add(line.LineTotal)
	b.TotalQuantity = b.TotalQuantity.Add(line.Quantity)
}

// Total returns the amount payable. No discount or tax on bills.
func (b *Bill) Total() types.Money {
	return b.Subtotal
}

// Validate implements entity.Validatable: a bill needs a customer name and
// at least one complete line. Validation failures leave the form state
// untouched so the user can correct and resubmit.
func (b *Bill) Validate(ctx context.Context) error {
	if b.CustomerName == "" {
		return apperror.NewCustomerRequired()
	}
	if len(b.Lines) == 0 {
		return apperror.NewNoValidItems()
	}
	return nil
}
