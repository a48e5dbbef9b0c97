// Package customer provides the customer catalog and purchase totals.
package customer

import (
	"context"
	"strings"
	"time"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
	"hardpos/internal/core/types"
)

// Status marks whether a customer is actively buying.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Customer is a registered buyer. TotalPurchases is a running sum that only
// ever increases via a completed bill; it is not derived from bill history.
type Customer struct {
	entity.Base

	Name           string      `db:"name" json:"name"`
	Phone          string      `db:"phone" json:"phone"`
	Email          string      `db:"email" json:"email,omitempty"`
	Address        string      `db:"address" json:"address,omitempty"`
	TotalPurchases types.Money `db:"total_purchases" json:"totalPurchases"`
	LastPurchaseAt *time.Time  `db:"last_purchase_at" json:"lastPurchaseAt,omitempty"`
	Status         Status      `db:"status" json:"status"`
}

// NewCustomer creates a customer with generated id, zero purchase total and
// active status.
func NewCustomer(name, phone, email, address string) *Customer {
	return &Customer{
		Base:           entity.NewBase(),
		Name:           name,
		Phone:          phone,
		Email:          email,
		Address:        address,
		TotalPurchases: types.Zero(),
		Status:         StatusActive,
	}
}

// Validate implements entity.Validatable.
// Phone numbers are Indian mobile numbers: exactly 10 digits.
func (c *Customer) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return apperror.NewValidation("phone number is required").
			WithDetail("field", "phone")
	}
	if !isTenDigits(c.Phone) {
		return apperror.NewValidation("phone number must be 10 digits").
			WithDetail("field", "phone").
			WithDetail("value", c.Phone)
	}
	return nil
}

// RecordPurchase adds a completed bill's total to the running sum and marks
// the customer active. Non-positive amounts are ignored: the total only
// moves forward.
func (c *Customer) RecordPurchase(amount types.Money, at time.Time) {
	if !amount.IsPositive() {
		return
	}
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	t := at.UTC()
	c.LastPurchaseAt = &t
	c.Status = StatusActive
	c.Touch()
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
