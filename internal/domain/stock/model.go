// Package stock provides the stock catalog and the stock status classifier.
package stock

import (
	"context"
	"strings"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
	"hardpos/internal/core/types"
)

// Categories lists the store's item categories, in display order.
var Categories = []string{
	"tools",
	"building-material",
	"hardware",
	"electrical",
	"plumbing",
	"paint",
}

// Item is a stocked product. Quantity and MinQuantity are the only stored
// stock figures; the status badge is derived via Status() on every read.
type Item struct {
	entity.Base

	Name        string      `db:"name" json:"name"`
	Category    string      `db:"category" json:"category"`
	Quantity    int64       `db:"quantity" json:"quantity"`
	MinQuantity int64       `db:"min_quantity" json:"minQuantity"`
	UnitPrice   types.Money `db:"unit_price" json:"unitPrice"`
	Supplier    string      `db:"supplier" json:"supplier,omitempty"`
}

// NewItem creates a stock item with generated id and timestamps.
func NewItem(name, category string, quantity, minQuantity int64, unitPrice types.Money, supplier string) *Item {
	return &Item{
		Base:        entity.NewBase(),
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		UnitPrice:   unitPrice,
		Supplier:    supplier,
	}
}

// Status derives the current stock classification. Never stored.
func (i *Item) Status() Status {
	return Classify(i.Quantity, i.MinQuantity)
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if strings.TrimSpace(i.Name) == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(i.Category) == "" {
		return apperror.NewValidation("category is required").
			WithDetail("field", "category")
	}
	if i.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	if i.MinQuantity < 0 {
		return apperror.NewValidation("minimum quantity cannot be negative").
			WithDetail("field", "minQuantity")
	}
	if i.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}
	return nil
}
