package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/reports"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// DashboardHandler handles dashboard endpoints.
type DashboardHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *reports.Service) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

// Summary handles GET /dashboard/summary: stock health, customer counts and
// today's/this month's sales in one payload.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSummary(summary))
}

// RecentActivity handles GET /dashboard/activity.
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 10)

	entries, err := h.service.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromActivityEntries(entries), Limit: limit})
}
