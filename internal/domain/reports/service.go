package reports

import (
	"context"
	"fmt"
	"time"

	"hardpos/internal/domain/activity"
	"hardpos/internal/domain/customer"
	"hardpos/internal/domain/stock"
)

// Service assembles the dashboard from the stock, customer and sales stores.
type Service struct {
	sales      Repository
	stock      stock.Repository
	customers  customer.Repository
	activities activity.Reader
}

// NewService creates a new reports service.
func NewService(sales Repository, stockRepo stock.Repository, customers customer.Repository, activities activity.Reader) *Service {
	return &Service{
		sales:      sales,
		stock:      stockRepo,
		customers:  customers,
		activities: activities,
	}
}

// GetSummary computes the dashboard header block. Today and month windows
// are calendar-based in the server's local time.
func (s *Service) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary

	counts, err := s.stock.CountByStatus(ctx)
	if err != nil {
		return out, fmt.Errorf("stock counts: %w", err)
	}
	out.TotalItems = counts.Total
	out.LowStockItems = counts.LowStock
	out.OutOfStockItems = counts.OutOfStock

	stats, err := s.customers.GetStats(ctx)
	if err != nil {
		return out, fmt.Errorf("customer stats: %w", err)
	}
	out.TotalCustomers = stats.Total
	out.ActiveCustomers = stats.Active

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out.TodaySales, err = s.sales.SalesSince(ctx, dayStart)
	if err != nil {
		return out, fmt.Errorf("today sales: %w", err)
	}
	out.MonthSales, err = s.sales.SalesSince(ctx, monthStart)
	if err != nil {
		return out, fmt.Errorf("month sales: %w", err)
	}

	return out, nil
}

// RecentActivity returns the newest recorded events, newest first.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]activity.Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.activities.Recent(ctx, limit)
}
