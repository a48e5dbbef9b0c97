package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"hardpos/internal/domain/calculation"
	"hardpos/internal/domain/pricing"
)

// PreviewCalculationRequest computes a pricing breakdown without saving.
type PreviewCalculationRequest struct {
	Items           []LineItemRequest `json:"items"`
	DiscountPercent decimal.Decimal   `json:"discountPercent"`
	TaxPercent      decimal.Decimal   `json:"taxPercent"`
}

// SaveCalculationRequest persists a calculator snapshot.
type SaveCalculationRequest struct {
	Items           []LineItemRequest `json:"items"`
	DiscountPercent decimal.Decimal   `json:"discountPercent"`
	TaxPercent      decimal.Decimal   `json:"taxPercent"`
}

// PricingResponse is the pricing breakdown.
type PricingResponse struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TaxableAmount   decimal.Decimal `json:"taxableAmount"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	FinalTotal      decimal.Decimal `json:"finalTotal"`
}

// FromPricingResult creates PricingResponse from the pricing engine result.
func FromPricingResult(r pricing.Result) PricingResponse {
	return PricingResponse{
		Subtotal:        r.Subtotal,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		TaxableAmount:   r.TaxableAmount,
		TaxPercent:      r.TaxPercent,
		TaxAmount:       r.TaxAmount,
		FinalTotal:      r.FinalTotal,
	}
}

// CalculationLineResponse is one calculated row.
type CalculationLineResponse struct {
	LineNo    int             `json:"lineNo"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CalculationResponse represents a saved calculation.
type CalculationResponse struct {
	ID            string                    `json:"id"`
	Number        string                    `json:"number"`
	Pricing       PricingResponse           `json:"pricing"`
	TotalQuantity decimal.Decimal           `json:"totalQuantity"`
	Lines         []CalculationLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// FromCalculation creates CalculationResponse from domain calculation.
func FromCalculation(c *calculation.Calculation) CalculationResponse {
	resp := CalculationResponse{
		ID:            c.ID.String(),
		Number:        c.Number,
		Pricing:       FromPricingResult(c.Result()),
		TotalQuantity: c.TotalQuantity,
		CreatedAt:     c.CreatedAt,
	}
	for _, line := range c.Lines {
		resp.Lines = append(resp.Lines, CalculationLineResponse{
			LineNo:    line.LineNo,
			Name:      line.Name,
			Unit:      string(line.Unit),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return resp
}

// FromCalculations creates responses for a calculation list (without lines).
func FromCalculations(calcs []calculation.Calculation) []CalculationResponse {
	out := make([]CalculationResponse, 0, len(calcs))
	for i := range calcs {
		out = append(out, FromCalculation(&calcs[i]))
	}
	return out
}
