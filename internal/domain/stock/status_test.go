package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hardpos/internal/core/types"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		quantity    int64
		minQuantity int64
		want        Status
	}{
		{"zero quantity is out of stock", 0, 10, StatusOutOfStock},
		{"zero quantity with zero threshold", 0, 0, StatusOutOfStock},
		{"below threshold is low", 5, 10, StatusLowStock},
		{"equal to threshold is low", 5, 5, StatusLowStock},
		{"just above threshold is in stock", 11, 10, StatusInStock},
		{"well stocked", 100, 10, StatusInStock},
		{"positive quantity with zero threshold", 1, 0, StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.quantity, tc.minQuantity))
		})
	}
}

func TestItemStatus_Derived(t *testing.T) {
	item := NewItem("PVC Pipe", "plumbing", 8, 15, types.NewMoneyFromInt(120), "Finolex")
	assert.Equal(t, StatusLowStock, item.Status())

	item.Quantity = 0
	assert.Equal(t, StatusOutOfStock, item.Status())

	item.Quantity = 40
	assert.Equal(t, StatusInStock, item.Status())
}
