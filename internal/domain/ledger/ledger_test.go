package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/types"
)

func TestNewBilling_Defaults(t *testing.T) {
	led := NewBilling()

	require.Equal(t, 1, led.Len())
	row := led.Items()[0]
	assert.Equal(t, int64(1), row.ID)
	assert.True(t, row.Quantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, UnitNone, row.Unit)
}

func TestNewCalculator_Defaults(t *testing.T) {
	led := NewCalculator()

	require.Equal(t, 1, led.Len())
	row := led.Items()[0]
	assert.True(t, row.Quantity.IsZero())
	assert.Equal(t, UnitPiece, row.Unit)
}

func TestAddItem_MonotonicIDs(t *testing.T) {
	led := NewBilling().AddItem().AddItem()

	require.Equal(t, 3, led.Len())
	items := led.Items()
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)

	// Removing a row never frees its id for reuse.
	led = led.RemoveItem(3).AddItem()
	assert.Equal(t, int64(4), led.Items()[led.Len()-1].ID)
}

func TestRemoveItem_LastRowIsNoOp(t *testing.T) {
	led := NewBilling()

	out := led.RemoveItem(1)
	assert.Equal(t, 1, out.Len())
}

func TestRemoveItem_UnknownIDIsNoOp(t *testing.T) {
	led := NewBilling().AddItem()

	out := led.RemoveItem(99)
	assert.Equal(t, 2, out.Len())
}

func TestUpdateQuantity_RecomputesLineTotal(t *testing.T) {
	led := NewBilling().
		UpdateName(1, "Cement Bag").
		UpdatePrice(1, types.MustMoney("350")).
		UpdateQuantity(1, decimal.NewFromInt(3))

	row := led.Items()[0]
	assert.True(t, row.LineTotal.Equal(types.MustMoney("1050")), "got %s", row.LineTotal)
}

func TestUpdatePrice_RecomputesLineTotal(t *testing.T) {
	led := NewBilling().
		UpdateQuantity(1, decimal.NewFromInt(4)).
		UpdatePrice(1, types.MustMoney("45.50"))

	row := led.Items()[0]
	assert.True(t, row.LineTotal.Equal(types.MustMoney("182")), "got %s", row.LineTotal)
}

func TestSubtotal_SumsLineTotals(t *testing.T) {
	led := NewBilling().
		UpdateName(1, "Hammer").
		UpdateQuantity(1, decimal.NewFromInt(2)).
		UpdatePrice(1, types.MustMoney("180"))
	led = led.AddItem().
		UpdateName(2, "Hinges").
		UpdateQuantity(2, decimal.NewFromInt(10)).
		UpdatePrice(2, types.MustMoney("45"))

	assert.True(t, led.Subtotal().Equal(types.MustMoney("810")), "got %s", led.Subtotal())
	assert.True(t, led.TotalQuantity().Equal(decimal.NewFromInt(12)))
}

func TestSubtotal_BlankLedgerIsZero(t *testing.T) {
	assert.True(t, NewBilling().Subtotal().IsZero())
	assert.True(t, NewCalculator().Subtotal().IsZero())
}

func TestAddThenRemove_RestoresSubtotal(t *testing.T) {
	led := NewBilling().
		UpdateName(1, "Paint").
		UpdateQuantity(1, decimal.NewFromInt(2)).
		UpdatePrice(1, types.MustMoney("220"))
	before := led.Subtotal()

	led = led.AddItem().
		UpdateName(2, "Brush").
		UpdateQuantity(2, decimal.NewFromInt(5)).
		UpdatePrice(2, types.MustMoney("30")).
		RemoveItem(2)

	assert.True(t, led.Subtotal().Equal(before))
	assert.Equal(t, 1, led.Len())
}

func TestOperations_DoNotMutateReceiver(t *testing.T) {
	led := NewBilling()
	_ = led.AddItem()
	_ = led.UpdateName(1, "changed")
	_ = led.UpdateQuantity(1, decimal.NewFromInt(9))

	row := led.Items()[0]
	assert.Equal(t, 1, led.Len())
	assert.Empty(t, row.Name)
	assert.True(t, row.Quantity.Equal(decimal.NewFromInt(1)))
}

func TestIsComplete(t *testing.T) {
	cases := []struct {
		name string
		item LineItem
		want bool
	}{
		{"all filled", LineItem{Name: "Pipe", Quantity: decimal.NewFromInt(1), UnitPrice: types.MustMoney("10")}, true},
		{"blank name", LineItem{Name: "  ", Quantity: decimal.NewFromInt(1), UnitPrice: types.MustMoney("10")}, false},
		{"zero quantity", LineItem{Name: "Pipe", Quantity: decimal.Zero, UnitPrice: types.MustMoney("10")}, false},
		{"zero price", LineItem{Name: "Pipe", Quantity: decimal.NewFromInt(1), UnitPrice: types.Zero()}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.IsComplete())
		})
	}
}

func TestValidateForSubmit(t *testing.T) {
	led := NewBilling()
	assert.Error(t, led.ValidateForSubmit())

	led = led.
		UpdateName(1, "Cement").
		UpdateQuantity(1, decimal.NewFromInt(1)).
		UpdatePrice(1, types.MustMoney("350"))
	assert.NoError(t, led.ValidateForSubmit())
}

func TestReset_RestartsAtOneBlankRow(t *testing.T) {
	led := NewBilling().AddItem().AddItem().
		UpdateName(1, "something")

	led = led.Reset()

	require.Equal(t, 1, led.Len())
	row := led.Items()[0]
	assert.Equal(t, int64(1), row.ID)
	assert.Empty(t, row.Name)
	assert.True(t, row.Quantity.Equal(decimal.NewFromInt(1)))
}

func TestUpdateUnit_InvalidIgnored(t *testing.T) {
	led := NewCalculator().UpdateUnit(1, Unit("barrel"))
	assert.Equal(t, UnitPiece, led.Items()[0].Unit)

	led = led.UpdateUnit(1, UnitKg)
	assert.Equal(t, UnitKg, led.Items()[0].Unit)
}
