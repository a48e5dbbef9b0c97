package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"hardpos/internal/domain/activity"
	"hardpos/internal/domain/reports"
)

// DashboardSummaryResponse is the dashboard header figures.
type DashboardSummaryResponse struct {
	TotalItems      int64           `json:"totalItems"`
	LowStockItems   int64           `json:"lowStockItems"`
	OutOfStockItems int64           `json:"outOfStockItems"`
	TotalCustomers  int64           `json:"totalCustomers"`
	ActiveCustomers int64           `json:"activeCustomers"`
	TodaySales      decimal.Decimal `json:"todaySales"`
	MonthSales      decimal.Decimal `json:"monthSales"`
}

// FromSummary creates response from domain summary.
func FromSummary(s reports.Summary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalItems:      s.TotalItems,
		LowStockItems:   s.LowStockItems,
		OutOfStockItems: s.OutOfStockItems,
		TotalCustomers:  s.TotalCustomers,
		ActiveCustomers: s.ActiveCustomers,
		TodaySales:      s.TodaySales,
		MonthSales:      s.MonthSales,
	}
}

// ActivityEntryResponse is one recent-activity feed row.
type ActivityEntryResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor,omitempty"`
	Summary    string          `json:"summary"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FromActivityEntries creates responses for the activity feed.
func FromActivityEntries(entries []activity.Entry) []ActivityEntryResponse {
	out := make([]ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityEntryResponse{
			ID:         e.ID.String(),
			EntityType: e.EntityType,
			Action:     e.Action,
			Actor:      e.Actor,
			Summary:    e.Summary,
			Payload:    e.Payload,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}
