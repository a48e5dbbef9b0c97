package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"hardpos/internal/core/types"
	"hardpos/internal/domain/stock"
)

// CreateStockItemRequest registers a new item in the stock catalog.
type CreateStockItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"omitempty,min=0"`
	MinQuantity int64           `json:"minQuantity" binding:"omitempty,min=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Supplier    string          `json:"supplier"`
}

// ToItem converts to a domain item.
func (r *CreateStockItemRequest) ToItem() *stock.Item {
	return stock.NewItem(r.Name, r.Category, r.Quantity, r.MinQuantity, types.Money(r.UnitPrice), r.Supplier)
}

// SetQuantityRequest adjusts an item's on-hand quantity.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"min=0"`
}

// SetMinQuantityRequest adjusts an item's low-stock threshold.
type SetMinQuantityRequest struct {
	MinQuantity int64 `json:"minQuantity" binding:"min=0"`
}

// SellRequest records a sale of the given quantity.
type SellRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// StockFilterRequest narrows stock listings.
type StockFilterRequest struct {
	PaginationRequest
	Search   string `form:"search"`
	Category string `form:"category"`
	LowOnly  bool   `form:"lowOnly"`
}

// ToFilter converts to a domain filter.
func (r *StockFilterRequest) ToFilter() stock.Filter {
	return stock.Filter{
		Search:   r.Search,
		Category: r.Category,
		LowOnly:  r.LowOnly,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// StockItemResponse represents a stock item. Status is derived on every
// read, never stored.
type StockItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"minQuantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Supplier    string          `json:"supplier,omitempty"`
	Status      string          `json:"status"`
	Version     int             `json:"version"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// FromStockItem creates StockItemResponse from domain item.
func FromStockItem(i *stock.Item) StockItemResponse {
	return StockItemResponse{
		ID:          i.ID.String(),
		Name:        i.Name,
		Category:    i.Category,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		UnitPrice:   i.UnitPrice,
		Supplier:    i.Supplier,
		Status:      string(i.Status()),
		Version:     i.Version,
		UpdatedAt:   i.UpdatedAt,
	}
}

// FromStockItems creates responses for an item list.
func FromStockItems(items []stock.Item) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromStockItem(&items[i]))
	}
	return out
}
