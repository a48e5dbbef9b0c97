package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/customer"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	*BaseHandler
	service *customer.Service
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, service: service}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust := req.ToCustomer()
	if err := h.service.Register(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, cust.ID.String())
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cust, err := h.service.Get(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomer(cust))
}

// List handles GET /customers with name/phone/email search.
func (h *CustomerHandler) List(c *gin.Context) {
	var req dto.CustomerFilterRequest
	if !h.BindQuery(c, &req) {
		return
	}
	req.Defaults()

	customers, err := h.service.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromCustomers(customers), Limit: req.Limit, Offset: req.Offset})
}

// Stats handles GET /customers/stats.
func (h *CustomerHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomerStats(stats))
}
