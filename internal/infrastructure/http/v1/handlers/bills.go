package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/billing"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// BillHandler handles billing endpoints.
type BillHandler struct {
	*BaseHandler
	service *billing.Service
}

// NewBillHandler creates a new bill handler.
func NewBillHandler(base *BaseHandler, service *billing.Service) *BillHandler {
	return &BillHandler{BaseHandler: base, service: service}
}

// Create handles POST /bills: finalizes a bill from the submitted form.
// Incomplete rows are dropped; validation failures leave nothing persisted.
func (h *BillHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !h.BindJSON(c, &req) {
		return
	}

	led := dto.BillLedger(req.Items)
	bill, err := h.service.Finalize(c.Request.Context(), req.CustomerName, req.CustomerPhone, led)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBill(bill))
}

// Get handles GET /bills/:id.
func (h *BillHandler) Get(c *gin.Context) {
	billID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bill, err := h.service.Get(c.Request.Context(), billID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBill(bill))
}

// Recent handles GET /bills: newest bills, without lines.
func (h *BillHandler) Recent(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 10)

	bills, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromBills(bills), Limit: limit})
}
