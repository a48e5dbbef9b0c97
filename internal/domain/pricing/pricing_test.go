package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hardpos/internal/core/types"
)

func TestCompute_Breakdown(t *testing.T) {
	r := Compute(types.MustMoney("1000"), decimal.NewFromInt(10), decimal.NewFromInt(18))

	assert.True(t, r.DiscountAmount.Equal(types.MustMoney("100")), "discount %s", r.DiscountAmount)
	assert.True(t, r.TaxableAmount.Equal(types.MustMoney("900")), "taxable %s", r.TaxableAmount)
	assert.True(t, r.TaxAmount.Equal(types.MustMoney("162")), "tax %s", r.TaxAmount)
	assert.True(t, r.FinalTotal.Equal(types.MustMoney("1062")), "final %s", r.FinalTotal)
}

func TestCompute_ZeroPercentages(t *testing.T) {
	r := Compute(types.MustMoney("850"), decimal.Zero, decimal.Zero)

	assert.True(t, r.DiscountAmount.IsZero())
	assert.True(t, r.TaxAmount.IsZero())
	assert.True(t, r.FinalTotal.Equal(types.MustMoney("850")))
}

func TestCompute_TaxOnly(t *testing.T) {
	r := Compute(types.MustMoney("850"), decimal.Zero, decimal.NewFromInt(18))

	assert.True(t, r.TaxAmount.Equal(types.MustMoney("153")), "tax %s", r.TaxAmount)
	assert.True(t, r.FinalTotal.Equal(types.MustMoney("1003")), "final %s", r.FinalTotal)
}

func TestCompute_ZeroSubtotal(t *testing.T) {
	r := Compute(types.Zero(), decimal.NewFromInt(10), decimal.NewFromInt(18))

	assert.True(t, r.DiscountAmount.IsZero())
	assert.True(t, r.TaxableAmount.IsZero())
	assert.True(t, r.TaxAmount.IsZero())
	assert.True(t, r.FinalTotal.IsZero())
}

func TestCompute_FullDiscount(t *testing.T) {
	r := Compute(types.MustMoney("500"), decimal.NewFromInt(100), decimal.NewFromInt(18))

	assert.True(t, r.TaxableAmount.IsZero())
	assert.True(t, r.FinalTotal.IsZero())
}

func TestCompute_FractionalPercent(t *testing.T) {
	r := Compute(types.MustMoney("200"), types.MustMoney("2.5"), decimal.Zero)

	assert.True(t, r.DiscountAmount.Equal(types.MustMoney("5")), "discount %s", r.DiscountAmount)
	assert.True(t, r.FinalTotal.Equal(types.MustMoney("195")))
}

func TestCompute_Invariants(t *testing.T) {
	cases := []struct {
		subtotal string
		discount int64
		tax      int64
	}{
		{"1000", 0, 0},
		{"1000", 10, 18},
		{"999.99", 5, 12},
		{"0.01", 50, 28},
	}
	for _, tc := range cases {
		r := Compute(types.MustMoney(tc.subtotal), decimal.NewFromInt(tc.discount), decimal.NewFromInt(tc.tax))

		assert.True(t, r.TaxableAmount.Equal(r.Subtotal.Sub(r.DiscountAmount)))
		assert.True(t, r.FinalTotal.Equal(r.TaxableAmount.Add(r.TaxAmount)))
		assert.False(t, r.FinalTotal.IsNegative())
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := Compute(types.MustMoney("1234.56"), decimal.NewFromInt(7), decimal.NewFromInt(12))
	b := Compute(types.MustMoney("1234.56"), decimal.NewFromInt(7), decimal.NewFromInt(12))

	assert.True(t, a.FinalTotal.Equal(b.FinalTotal))
	assert.True(t, a.DiscountAmount.Equal(b.DiscountAmount))
}
