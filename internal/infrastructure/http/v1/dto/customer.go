package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"hardpos/internal/domain/customer"
)

// CreateCustomerRequest registers a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// ToCustomer converts to a domain customer.
func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	return customer.NewCustomer(r.Name, r.Phone, r.Email, r.Address)
}

// CustomerFilterRequest narrows customer listings.
type CustomerFilterRequest struct {
	PaginationRequest
	Search string `form:"search"`
}

// ToFilter converts to a domain filter.
func (r *CustomerFilterRequest) ToFilter() customer.Filter {
	return customer.Filter{
		Search: r.Search,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	LastPurchaseAt *time.Time      `json:"lastPurchaseAt,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// FromCustomer creates CustomerResponse from domain customer.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
		LastPurchaseAt: c.LastPurchaseAt,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
	}
}

// FromCustomers creates responses for a customer list.
func FromCustomers(customers []customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, FromCustomer(&customers[i]))
	}
	return out
}

// CustomerStatsResponse is the customer page header figures.
type CustomerStatsResponse struct {
	Total       int64           `json:"total"`
	Active      int64           `json:"active"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	AverageSale decimal.Decimal `json:"averageSale"`
}

// FromCustomerStats creates response from domain stats.
func FromCustomerStats(s customer.Stats) CustomerStatsResponse {
	avg := decimal.Zero
	if s.Total > 0 {
		avg = s.TotalSales.Div(decimal.NewFromInt(s.Total)).Round(2)
	}
	return CustomerStatsResponse{
		Total:       s.Total,
		Active:      s.Active,
		TotalSales:  s.TotalSales,
		AverageSale: avg,
	}
}
