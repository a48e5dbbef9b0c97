package customer

import (
	"context"
	"fmt"
	"time"

	"hardpos/internal/core/apperror"
	appctx "hardpos/internal/core/context"
	"hardpos/internal/core/id"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/activity"
	"hardpos/pkg/logger"
)

// Service provides business operations for the customer catalog.
type Service struct {
	repo     Repository
	recorder activity.Recorder
}

// NewService creates a new customer service.
func NewService(repo Repository, recorder activity.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

// Register adds a new customer. Phone numbers are unique: registering a
// duplicate phone is a conflict.
func (s *Service) Register(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.FindByPhone(ctx, c.Phone)
	switch {
	case err == nil && existing != nil:
		return apperror.NewDuplicate("customer", "phone", c.Phone)
	case err != nil && !apperror.IsNotFound(err):
		return fmt.Errorf("check phone uniqueness: %w", err)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	s.record(ctx, activity.New("customer", c.ID, activity.ActionCreate,
		appctx.GetUserID(ctx),
		fmt.Sprintf("registered customer %s", c.Name),
		c))

	logger.Info(ctx, "customer registered", "customer_id", c.ID, "name", c.Name)
	return nil
}

// Get returns a single customer.
func (s *Service) Get(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// List returns customers matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Customer, error) {
	return s.repo.List(ctx, f)
}

// GetStats returns the customer page header figures.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	return s.repo.GetStats(ctx)
}

// RecordPurchaseByPhone bumps the running purchase total for the customer
// with the given phone, if one is registered. Bills for walk-in customers
// (unknown or empty phone) simply skip the bump; that is not an error.
//
// Called by billing inside the bill's transaction so the bill and the total
// move together.
func (s *Service) RecordPurchaseByPhone(ctx context.Context, phone string, amount types.Money, at time.Time) error {
	if phone == "" || !amount.IsPositive() {
		return nil
	}

	c, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("find customer by phone: %w", err)
	}

	c.RecordPurchase(amount, at)
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update customer totals: %w", err)
	}

	logger.Info(ctx, "customer purchase recorded",
		"customer_id", c.ID,
		"amount", amount,
		"total_purchases", c.TotalPurchases,
	)
	return nil
}

func (s *Service) record(ctx context.Context, entry activity.Entry) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, entry); err != nil {
		logger.Warn(ctx, "record activity", "error", err)
	}
}
