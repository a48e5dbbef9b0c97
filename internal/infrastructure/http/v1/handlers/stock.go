package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/stock"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// StockHandler handles stock catalog endpoints.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// Create handles POST /stock.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := req.ToItem()
	if err := h.service.Register(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, item.ID.String())
}

// Get handles GET /stock/:id.
func (h *StockHandler) Get(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockItem(item))
}

// List handles GET /stock with search, category and low-stock filters.
func (h *StockHandler) List(c *gin.Context) {
	var req dto.StockFilterRequest
	if !h.BindQuery(c, &req) {
		return
	}
	req.Defaults()

	items, err := h.service.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromStockItems(items), Limit: req.Limit, Offset: req.Offset})
}

// SetQuantity handles PUT /stock/:id/quantity.
func (h *StockHandler) SetQuantity(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.SetQuantity(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockItem(item))
}

// SetMinQuantity handles PUT /stock/:id/min-quantity.
func (h *StockHandler) SetMinQuantity(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetMinQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.SetMinQuantity(c.Request.Context(), itemID, req.MinQuantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockItem(item))
}

// Sell handles POST /stock/:id/sell: decrements on-hand quantity, rejecting
// sales beyond the available amount.
func (h *StockHandler) Sell(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SellRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.Sell(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockItem(item))
}

// Categories handles GET /stock/categories.
func (h *StockHandler) Categories(c *gin.Context) {
	h.OK(c, gin.H{"categories": stock.Categories})
}
