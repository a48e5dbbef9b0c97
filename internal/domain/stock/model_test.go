package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/types"
)

func TestItemValidate(t *testing.T) {
	ctx := context.Background()

	valid := NewItem("Hammer 500g", "tools", 25, 10, types.MustMoney("180"), "Taparia")
	assert.NoError(t, valid.Validate(ctx))

	cases := []struct {
		name   string
		mutate func(*Item)
	}{
		{"blank name", func(i *Item) { i.Name = "  " }},
		{"blank category", func(i *Item) { i.Category = "" }},
		{"negative quantity", func(i *Item) { i.Quantity = -1 }},
		{"negative min quantity", func(i *Item) { i.MinQuantity = -1 }},
		{"negative price", func(i *Item) { i.UnitPrice = types.MustMoney("-5") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := NewItem("Hammer 500g", "tools", 25, 10, types.MustMoney("180"), "Taparia")
			tc.mutate(item)

			err := item.Validate(ctx)
			assert.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}
