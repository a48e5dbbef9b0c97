// Package reports computes dashboard figures from the live stores.
// Nothing here is hardcoded or seeded; every number is derived on request.
package reports

import (
	"hardpos/internal/core/types"
)

// Summary is the dashboard header block.
type Summary struct {
	TotalItems      int64       `json:"totalItems"`
	LowStockItems   int64       `json:"lowStockItems"`
	OutOfStockItems int64       `json:"outOfStockItems"`
	TotalCustomers  int64       `json:"totalCustomers"`
	ActiveCustomers int64       `json:"activeCustomers"`
	TodaySales      types.Money `json:"todaySales"`
	MonthSales      types.Money `json:"monthSales"`
}
