package calculation

import (
	"context"
	"fmt"
	"time"

	appctx "hardpos/internal/core/context"
	"hardpos/internal/core/id"
	"hardpos/internal/core/tx"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/activity"
	"hardpos/internal/domain/ledger"
	"hardpos/pkg/logger"
	"hardpos/pkg/numerator"
)

// Service saves price-calculator results.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numerator *numerator.Service
	recorder  activity.Recorder
}

// NewService creates a new calculation service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service, recorder activity.Recorder) *Service {
	return &Service{repo: repo, txManager: txManager, numerator: num, recorder: recorder}
}

// Save snapshots the calculator state. Validation failures (no complete
// line) are returned before anything is written.
func (s *Service) Save(ctx context.Context, led ledger.Ledger, discountPercent, taxPercent types.Percent) (*Calculation, error) {
	calc := NewCalculation(led, discountPercent, taxPercent)
	if err := calc.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CALC"), nil, time.Now())
	if err != nil {
		return nil, fmt.Errorf("generate calculation number: %w", err)
	}
	calc.Number = number

	// Header and lines are separate inserts; the transaction keeps a failed
	// line insert from leaving a partial calculation behind.
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, calc); err != nil {
			return fmt.Errorf("create calculation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, activity.New("calculation", calc.ID, activity.ActionCreate,
		appctx.GetUserID(ctx),
		fmt.Sprintf("calculation %s saved", calc.Number),
		calc))

	logger.Info(ctx, "calculation saved",
		"calculation_id", calc.ID,
		"number", calc.Number,
		"final_total", calc.FinalTotal,
		"lines", len(calc.Lines),
	)
	return calc, nil
}

// Get returns a calculation with its lines.
func (s *Service) Get(ctx context.Context, calcID id.ID) (*Calculation, error) {
	return s.repo.GetByID(ctx, calcID)
}

// Recent returns the newest calculations for the sidebar list.
func (s *Service) Recent(ctx context.Context, limit int) ([]Calculation, error) {
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
