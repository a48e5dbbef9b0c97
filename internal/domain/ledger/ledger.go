// Package ledger provides the ordered line-item ledger underlying bills and
// price calculations.
//
// The ledger is a pure value: every operation returns a new Ledger and leaves
// the receiver untouched, so callers replace their copy atomically and no
// observer can ever see a quantity without its recomputed line total.
//
// Contract: the ledger trusts its inputs. Negative quantities or prices must
// be clamped by the surrounding form before they reach UpdateQuantity or
// UpdatePrice; the ledger does not validate sign.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/types"
)

// LineItem is a single name/quantity/rate row.
// LineTotal is a cache of Quantity * UnitPrice, never a source of truth:
// the update operations recompute it in the same step as the field change.
type LineItem struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Unit      Unit        `json:"unit,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice types.Money `json:"unitPrice"`
	LineTotal types.Money `json:"lineTotal"`
}

// IsComplete reports whether the row is fully filled in:
// non-empty name, quantity > 0 and price > 0.
func (li LineItem) IsComplete() bool {
	return strings.TrimSpace(li.Name) != "" &&
		li.Quantity.IsPositive() &&
		li.UnitPrice.IsPositive()
}

func (li LineItem) recompute() LineItem {
	li.LineTotal = li.Quantity.Mul(li.UnitPrice)
	return li
}

// Ledger is an ordered sequence of line items. Insertion order is significant
// (rows are displayed and billed in that order) and ids are unique and
// monotonic, never reused after removal.
//
// In edit mode a ledger always holds at least one row so the form stays
// editable; RemoveItem on the last row is a silent no-op.
type Ledger struct {
	items       []LineItem
	defaultQty  decimal.Decimal
	defaultUnit Unit

	// nextID is a high-water mark: removing a row never frees its id.
	nextID int64
}

// NewBilling creates a bill ledger with one blank row (quantity defaults to 1,
// no unit-of-measure on bill lines).
func NewBilling() Ledger {
	l := Ledger{defaultQty: decimal.NewFromInt(1), defaultUnit: UnitNone, nextID: 2}
	l.items = []LineItem{l.blank(1)}
	return l
}

// NewCalculator creates a price-calculator ledger with one blank row
// (quantity defaults to 0, unit defaults to piece).
func NewCalculator() Ledger {
	l := Ledger{defaultQty: decimal.Zero, defaultUnit: UnitPiece, nextID: 2}
	l.items = []LineItem{l.blank(1)}
	return l
}

func (l Ledger) blank(id int64) LineItem {
	return LineItem{
		ID:       id,
		Unit:     l.defaultUnit,
		Quantity: l.defaultQty,
	}.recompute()
}

// clone copies the item slice so mutations never alias the receiver.
func (l Ledger) clone() Ledger {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	l.items = items
	return l
}

// Items returns the rows in insertion order. The returned slice is a copy.
func (l Ledger) Items() []LineItem {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	return items
}

// Len returns the number of rows, blank ones included.
func (l Ledger) Len() int {
	return len(l.items)
}

// NextID returns the id the next added row will receive.
func (l Ledger) NextID() int64 {
	if l.nextID > 0 {
		return l.nextID
	}
	var max int64
	for _, it := range l.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// AddItem appends a new blank row. Always succeeds.
func (l Ledger) AddItem() Ledger {
	out := l.clone()
	id := l.NextID()
	out.items = append(out.items, l.blank(id))
	out.nextID = id + 1
	return out
}

// RemoveItem removes the row with the given id. Removing the only remaining
// row is a no-op, not an error, so the form always keeps one editable row.
// Unknown ids are also a no-op.
func (l Ledger) RemoveItem(id int64) Ledger {
	if len(l.items) <= 1 {
		return l
	}
	out := l.clone()
	for i, it := range out.items {
		if it.ID == id {
			out.items = append(out.items[:i], out.items[i+1:]...)
			return out
		}
	}
	return l
}

// UpdateName replaces the name on the matching row.
func (l Ledger) UpdateName(id int64, name string) Ledger {
	return l.update(id, func(it LineItem) LineItem {
		it.Name = name
		return it
	})
}

// UpdateUnit replaces the unit-of-measure on the matching row.
// Unknown units are ignored.
func (l Ledger) UpdateUnit(id int64, u Unit) Ledger {
	if !u.IsValid() {
		return l
	}
	return l.update(id, func(it LineItem) LineItem {
		it.Unit = u
		return it
	})
}

// UpdateQuantity replaces the quantity and recomputes the line total in the
// same operation, so the two are never inconsistent to any observer.
func (l Ledger) UpdateQuantity(id int64, qty decimal.Decimal) Ledger {
	return l.update(id, func(it LineItem) LineItem {
		it.Quantity = qty
		return it.recompute()
	})
}

// UpdatePrice replaces the unit price and recomputes the line total in the
// same operation.
func (l Ledger) UpdatePrice(id int64, price types.Money) Ledger {
	return l.update(id, func(it LineItem) LineItem {
		it.UnitPrice = price
		return it.recompute()
	})
}

func (l Ledger) update(id int64, fn func(LineItem) LineItem) Ledger {
	out := l.clone()
	for i, it := range out.items {
		if it.ID == id {
			out.items[i] = fn(it)
			return out
		}
	}
	return l
}

// Subtotal returns the sum of all line totals. Zero for an empty or
// all-blank ledger.
func (l Ledger) Subtotal() types.Money {
	sum := decimal.Zero
	for _, it := range l.items {
		sum = sum.Add(it.LineTotal)
	}
	return sum
}

// TotalQuantity returns the sum of all quantities, used for per-unit-rate
// quick stats.
func (l Ledger) TotalQuantity() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range l.items {
		sum = sum.Add(it.Quantity)
	}
	return sum
}

// HasCompleteItem reports whether at least one row is fully filled in.
func (l Ledger) HasCompleteItem() bool {
	for _, it := range l.items {
		if it.IsComplete() {
			return true
		}
	}
	return false
}

// ValidateForSubmit enforces the shared submission policy: at least one row
// with non-empty name, quantity > 0 and price > 0. The ledger itself is left
// untouched; callers surface the error and let the user correct and resubmit.
func (l Ledger) ValidateForSubmit() error {
	if !l.HasCompleteItem() {
		return apperror.NewNoValidItems()
	}
	return nil
}

// Reset returns the ledger to its one-blank-row starting state, used after a
// successful submit or an explicit reset. Ids restart at 1.
func (l Ledger) Reset() Ledger {
	l.items = []LineItem{l.blank(1)}
	l.nextID = 2
	return l
}
