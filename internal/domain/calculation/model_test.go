package calculation

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

func calcLedger(t *testing.T) ledger.Ledger {
	t.Helper()
	led := ledger.NewCalculator().
		UpdateName(1, "Cement Bag 50kg").
		UpdateUnit(1, ledger.UnitBag).
		UpdateQuantity(1, decimal.NewFromInt(2)).
		UpdatePrice(1, types.MustMoney("350"))
	led = led.AddItem().
		UpdateName(2, "Wire 1.5mm").
		UpdateUnit(2, ledger.UnitMeter).
		UpdateQuantity(2, decimal.NewFromInt(20)).
		UpdatePrice(2, types.MustMoney("15"))
	return led
}

func TestNewCalculation_AppliesPricing(t *testing.T) {
	// Subtotal 700 + 300 = 1000; 10% discount, 18% GST.
	calc := NewCalculation(calcLedger(t), decimal.NewFromInt(10), decimal.NewFromInt(18))

	require.Len(t, calc.Lines, 2)
	assert.True(t, calc.Subtotal.Equal(types.MustMoney("1000")), "subtotal %s", calc.Subtotal)
	assert.True(t, calc.DiscountAmount.Equal(types.MustMoney("100")))
	assert.True(t, calc.TaxableAmount.Equal(types.MustMoney("900")))
	assert.True(t, calc.TaxAmount.Equal(types.MustMoney("162")))
	assert.True(t, calc.FinalTotal.Equal(types.MustMoney("1062")))
	assert.True(t, calc.TotalQuantity.Equal(decimal.NewFromInt(22)))
}

func TestNewCalculation_LinesCarryUnits(t *testing.T) {
	calc := NewCalculation(calcLedger(t), decimal.Zero, decimal.Zero)

	assert.Equal(t, ledger.UnitBag, calc.Lines[0].Unit)
	assert.Equal(t, ledger.UnitMeter, calc.Lines[1].Unit)
}

func TestNewCalculation_DropsIncompleteLines(t *testing.T) {
	led := calcLedger(t).AddItem() // blank third row

	calc := NewCalculation(led, decimal.Zero, DefaultTaxPercent)

	require.Len(t, calc.Lines, 2)
	assert.True(t, calc.Subtotal.Equal(types.MustMoney("1000")))
}

func TestCalculationResult_RoundTrips(t *testing.T) {
	calc := NewCalculation(calcLedger(t), decimal.NewFromInt(5), DefaultTaxPercent)

	r := calc.Result()
	assert.True(t, r.Subtotal.Equal(calc.Subtotal))
	assert.True(t, r.DiscountAmount.Equal(calc.DiscountAmount))
	assert.True(t, r.TaxAmount.Equal(calc.TaxAmount))
	assert.True(t, r.FinalTotal.Equal(calc.FinalTotal))
}

func TestCalculationValidate(t *testing.T) {
	ctx := context.Background()

	valid := NewCalculation(calcLedger(t), decimal.Zero, DefaultTaxPercent)
	assert.NoError(t, valid.Validate(ctx))

	empty := NewCalculation(ledger.NewCalculator(), decimal.Zero, DefaultTaxPercent)
	err := empty.Validate(ctx)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNoValidItems, appErr.Code)
}

func TestGSTRates(t *testing.T) {
	assert.Equal(t, []int64{0, 5, 12, 18, 28}, GSTRates)
	assert.True(t, DefaultTaxPercent.Equal(decimal.NewFromInt(18)))
}
