package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/types"
)

func TestCustomerValidate_Phone(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"letters", "98765abcde", false},
		{"with dashes", "98-7654321", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCustomer("Rajesh Kumar", tc.phone, "", "")
			err := c.Validate(ctx)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCustomerValidate_Name(t *testing.T) {
	c := NewCustomer("   ", "9876543210", "", "")
	assert.Error(t, c.Validate(context.Background()))
}

func TestRecordPurchase(t *testing.T) {
	c := NewCustomer("Sunita Sharma", "9123456780", "", "")
	c.Status = StatusInactive
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	c.RecordPurchase(types.MustMoney("1250"), at)

	assert.True(t, c.TotalPurchases.Equal(types.MustMoney("1250")))
	require.NotNil(t, c.LastPurchaseAt)
	assert.Equal(t, at, *c.LastPurchaseAt)
	assert.Equal(t, StatusActive, c.Status)
	assert.Equal(t, 2, c.Version)
}

func TestRecordPurchase_Accumulates(t *testing.T) {
	c := NewCustomer("Amit Traders", "9988776655", "", "")

	c.RecordPurchase(types.MustMoney("500"), time.Now())
	c.RecordPurchase(types.MustMoney("300.50"), time.Now())

	assert.True(t, c.TotalPurchases.Equal(types.MustMoney("800.50")))
}

func TestRecordPurchase_IgnoresNonPositive(t *testing.T) {
	c := NewCustomer("Amit Traders", "9988776655", "", "")

	c.RecordPurchase(types.Zero(), time.Now())
	c.RecordPurchase(types.MustMoney("-100"), time.Now())

	assert.True(t, c.TotalPurchases.IsZero())
	assert.Nil(t, c.LastPurchaseAt)
	assert.Equal(t, 1, c.Version)
}
