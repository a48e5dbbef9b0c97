package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/ledger"
)

func billLedger(t *testing.T) ledger.Ledger {
	t.Helper()
	led := ledger.NewBilling().
		UpdateName(1, "Cement Bag 50kg").
		UpdateQuantity(1, decimal.NewFromInt(2)).
		UpdatePrice(1, types.MustMoney("350"))
	led = led.AddItem().
		UpdateName(2, "Door Hinges").
		UpdateQuantity(2, decimal.NewFromInt(4)).
		UpdatePrice(2, types.MustMoney("45"))
	return led
}

func TestNewBill_KeepsOnlyCompleteLines(t *testing.T) {
	led := billLedger(t).AddItem() // third row stays blank

	bill := NewBill("Rajesh Kumar", "9876543210", led)

	require.Len(t, bill.Lines, 2)
	assert.Equal(t, 1, bill.Lines[0].LineNo)
	assert.Equal(t, 2, bill.Lines[1].LineNo)
	assert.True(t, bill.Subtotal.Equal(types.MustMoney("880")), "subtotal %s", bill.Subtotal)
	assert.True(t, bill.TotalQuantity.Equal(decimal.NewFromInt(6)))
}

func TestBillTotal_EqualsSubtotal(t *testing.T) {
	bill := NewBill("Rajesh Kumar", "", billLedger(t))
	assert.True(t, bill.Total().Equal(bill.Subtotal))
}

func TestNewBill_TrimsCustomerFields(t *testing.T) {
	bill := NewBill("  Rajesh Kumar  ", " 9876543210 ", billLedger(t))
	assert.Equal(t, "Rajesh Kumar", bill.CustomerName)
	assert.Equal(t, "9876543210", bill.CustomerPhone)
}

func TestBillValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		bill := NewBill("Rajesh Kumar", "", billLedger(t))
		assert.NoError(t, bill.Validate(ctx))
	})

	t.Run("missing customer name", func(t *testing.T) {
		bill := NewBill("   ", "", billLedger(t))
		err := bill.Validate(ctx)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeCustomerRequired, appErr.Code)
	})

	t.Run("no complete lines", func(t *testing.T) {
		bill := NewBill("Rajesh Kumar", "", ledger.NewBilling())
		err := bill.Validate(ctx)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNoValidItems, appErr.Code)
	})
}
