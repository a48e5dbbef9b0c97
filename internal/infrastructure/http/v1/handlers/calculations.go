package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/calculation"
	"hardpos/internal/domain/pricing"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// CalculationHandler handles price-calculator endpoints.
type CalculationHandler struct {
	*BaseHandler
	service *calculation.Service
}

// NewCalculationHandler creates a new calculation handler.
func NewCalculationHandler(base *BaseHandler, service *calculation.Service) *CalculationHandler {
	return &CalculationHandler{BaseHandler: base, service: service}
}

// Preview handles POST /calculations/preview: computes the pricing breakdown
// without persisting anything.
func (h *CalculationHandler) Preview(c *gin.Context) {
	var req dto.PreviewCalculationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	led := dto.CalculatorLedger(req.Items)
	result := pricing.Compute(led.Subtotal(), req.DiscountPercent, req.TaxPercent)

	h.OK(c, dto.FromPricingResult(result))
}

// Save handles POST /calculations: persists a calculator snapshot.
func (h *CalculationHandler) Save(c *gin.Context) {
	var req dto.SaveCalculationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	led := dto.CalculatorLedger(req.Items)
	calc, err := h.service.Save(c.Request.Context(), led, req.DiscountPercent, req.TaxPercent)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCalculation(calc))
}

// Get handles GET /calculations/:id.
func (h *CalculationHandler) Get(c *gin.Context) {
	calcID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	calc, err := h.service.Get(c.Request.Context(), calcID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCalculation(calc))
}

// Recent handles GET /calculations: newest snapshots, without lines.
func (h *CalculationHandler) Recent(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 10)

	calcs, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromCalculations(calcs), Limit: limit})
}
