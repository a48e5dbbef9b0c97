package dto

import (
	"github.com/shopspring/decimal"

	"hardpos/internal/domain/ledger"
)

// LineItemRequest is one row submitted from a bill or calculator form.
type LineItemRequest struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// toLedger replays the submitted rows onto a fresh ledger. Negative
// quantities and prices are clamped to zero before they reach the ledger,
// matching the form behavior.
func toLedger(base ledger.Ledger, items []LineItemRequest) ledger.Ledger {
	led := base
	for i, it := range items {
		rowID := int64(i + 1)
		if i > 0 {
			led = led.AddItem()
		}
		led = led.UpdateName(rowID, it.Name)
		if it.Unit != "" {
			led = led.UpdateUnit(rowID, ledger.Unit(it.Unit))
		}
		led = led.UpdateQuantity(rowID, clampNonNegative(it.Quantity))
		led = led.UpdatePrice(rowID, clampNonNegative(it.UnitPrice))
	}
	return led
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// BillLedger builds a bill-form ledger from the submitted rows.
func BillLedger(items []LineItemRequest) ledger.Ledger {
	return toLedger(ledger.NewBilling(), items)
}

// CalculatorLedger builds a calculator ledger from the submitted rows.
func CalculatorLedger(items []LineItemRequest) ledger.Ledger {
	return toLedger(ledger.NewCalculator(), items)
}
