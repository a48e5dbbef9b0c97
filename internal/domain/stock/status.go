package stock

// Status is the derived classification of inventory health.
// It is always computed from quantity vs. threshold via Classify and never
// stored, so the label can never drift from the count it describes.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
)

// Classify derives the stock status from the current quantity and the
// minimum-stock threshold:
//
//   - quantity == 0            -> out of stock (threshold is irrelevant at zero)
//   - quantity <= minQuantity  -> low stock (equal counts as low)
//   - otherwise                -> in stock
//
// Every write to quantity or minQuantity must go back through Classify; no
// code path may set a status label independently.
func Classify(quantity, minQuantity int64) Status {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if quantity <= minQuantity {
		return StatusLowStock
	}
	return StatusInStock
}
