package billing

import (
	"context"
	"fmt"
	"time"

	appctx "hardpos/internal/core/context"
	"hardpos/internal/core/id"
	"hardpos/internal/core/tx"
	"hardpos/internal/domain/activity"
	"hardpos/internal/domain/customer"
	"hardpos/internal/domain/ledger"
	"hardpos/pkg/logger"
	"hardpos/pkg/numerator"
)

// Service finalizes customer bills.
type Service struct {
	repo      Repository
	customers *customer.Service
	txManager tx.Manager
	numerator *numerator.Service
	recorder  activity.Recorder
}

// NewService creates a new billing service.
func NewService(
	repo Repository,
	customers *customer.Service,
	txManager tx.Manager,
	num *numerator.Service,
	recorder activity.Recorder,
) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		txManager: txManager,
		numerator: num,
		recorder:  recorder,
	}
}

// Finalize turns the form's ledger into a numbered, persisted bill.
//
// Validation failures (missing customer name, no complete line) are returned
// as structured errors before anything is written, so the caller can surface
// a message and let the user retry. On success the bill insert and the
// customer's running purchase total commit as one transaction.
func (s *Service) Finalize(ctx context.Context, customerName, customerPhone string, led ledger.Ledger) (*Bill, error) {
	bill := NewBill(customerName, customerPhone, led)
	if err := bill.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("BILL"), nil, time.Now())
	if err != nil {
		return nil, fmt.Errorf("generate bill number: %w", err)
	}
	bill.Number = number

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, bill); err != nil {
			return fmt.Errorf("create bill: %w", err)
		}
		if err := s.customers.RecordPurchaseByPhone(ctx, bill.CustomerPhone, bill.Total(), bill.CreatedAt); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, activity.New("bill", bill.ID, activity.ActionCreate,
		appctx.GetUserID(ctx),
		fmt.Sprintf("bill %s for %s", bill.Number, bill.CustomerName),
		bill))

	logger.Info(ctx, "bill finalized",
		"bill_id", bill.ID,
		"number", bill.Number,
		"customer", bill.CustomerName,
		"total", bill.Total(),
		"lines", len(bill.Lines),
	)
	return bill, nil
}

// Get returns a bill with its lines.
func (s *Service) Get(ctx context.Context, billID id.ID) (*Bill, error) {
	return s.repo.GetByID(ctx, billID)
}

// Recent returns the newest bills for the sidebar list.
func (s *Service) Recent(ctx context.Context, limit int) ([]Bill, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

func (s *Service) record(ctx context.Context, entry activity.Entry) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, entry); err != nil {
		logger.Warn(ctx, "record activity", "error", err)
	}
}
