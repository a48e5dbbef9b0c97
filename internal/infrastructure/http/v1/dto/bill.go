package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"hardpos/internal/domain/billing"
)

// CreateBillRequest finalizes a bill from the billing form.
type CreateBillRequest struct {
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Items         []LineItemRequest `json:"items"`
}

// BillLineResponse is one billed row.
type BillLineResponse struct {
	LineNo    int             `json:"lineNo"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Total         decimal.Decimal    `json:"total"`
	TotalQuantity decimal.Decimal    `json:"totalQuantity"`
	Lines         []BillLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// FromBill creates BillResponse from domain bill.
func FromBill(b *billing.Bill) BillResponse {
	resp := BillResponse{
		ID:            b.ID.String(),
		Number:        b.Number,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Subtotal:      b.Subtotal,
		Total:         b.Total(),
		TotalQuantity: b.TotalQuantity,
		CreatedAt:     b.CreatedAt,
	}
	for _, line := range b.Lines {
		resp.Lines = append(resp.Lines, BillLineResponse{
			LineNo:    line.LineNo,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return resp
}

// FromBills creates responses for a bill list (without lines).
func FromBills(bills []billing.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, FromBill(&bills[i]))
	}
	return out
}
