package stock

import (
	"context"
	"fmt"

	"hardpos/internal/core/apperror"
	appctx "hardpos/internal/core/context"
	"hardpos/internal/core/id"
	"hardpos/internal/domain/activity"
	"hardpos/pkg/logger"
)

// Service provides business operations for the stock catalog.
// The quantity and its derived status always change as one atomic unit:
// status is recomputed from the stored counts on every read, so a partial
// update (count without label, or vice versa) cannot be observed.
type Service struct {
	repo     Repository
	recorder activity.Recorder
}

// NewService creates a new stock service.
func NewService(repo Repository, recorder activity.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

// Register adds a new item to the catalog. The initial status is available
// immediately via Item.Status().
func (s *Service) Register(ctx context.Context, item *Item) error {
	if err := item.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("create stock item: %w", err)
	}

	s.record(ctx, activity.New("stock_item", item.ID, activity.ActionCreate,
		appctx.GetUserID(ctx),
		fmt.Sprintf("registered %s (%d %s)", item.Name, item.Quantity, item.Category),
		item))

	logger.Info(ctx, "stock item registered",
		"item_id", item.ID,
		"name", item.Name,
		"status", item.Status(),
	)
	return nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, itemID id.ID) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

// List returns items matching the filter, in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]Item, error) {
	return s.repo.List(ctx, f)
}

// SetQuantity records a stock correction or restock to an absolute count.
// Negative counts are rejected; the derived status follows automatically.
func (s *Service) SetQuantity(ctx context.Context, itemID id.ID, quantity int64) (*Item, error) {
	if quantity < 0 {
		return nil, apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	previous := item.Quantity
	item.Quantity = quantity
	item.Touch()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}

	action := activity.ActionUpdate
	if quantity > previous {
		action = activity.ActionRestock
	}
	s.record(ctx, activity.New("stock_item", item.ID, action,
		appctx.GetUserID(ctx),
		fmt.Sprintf("%s: %d -> %d", item.Name, previous, quantity),
		item))

	logger.Info(ctx, "stock quantity set",
		"item_id", item.ID,
		"previous", previous,
		"quantity", quantity,
		"status", item.Status(),
	)
	return item, nil
}

// SetMinQuantity changes the low-stock threshold. The status badge follows
// on the next read since it is derived, never stored.
func (s *Service) SetMinQuantity(ctx context.Context, itemID id.ID, minQuantity int64) (*Item, error) {
	if minQuantity < 0 {
		return nil, apperror.NewValidation("minimum quantity cannot be negative").
			WithDetail("field", "minQuantity")
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.MinQuantity = minQuantity
	item.Touch()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}
	return item, nil
}

// Sell decrements stock for a counter sale. Selling more than is on hand is
// a business rule violation, not a silent clamp.
func (s *Service) Sell(ctx context.Context, itemID id.ID, quantity int64) (*Item, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidation("sale quantity must be positive").
			WithDetail("field", "quantity")
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.Quantity < quantity {
		return nil, apperror.NewInsufficientStock(item.ID.String(), quantity, item.Quantity)
	}

	item.Quantity -= quantity
	item.Touch()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}

	s.record(ctx, activity.New("stock_item", item.ID, activity.ActionSale,
		appctx.GetUserID(ctx),
		fmt.Sprintf("sold %d x %s", quantity, item.Name),
		item))

	logger.Info(ctx, "stock sold",
		"item_id", item.ID,
		"quantity", quantity,
		"remaining", item.Quantity,
		"status", item.Status(),
	)
	return item, nil
}

// record is best-effort: a failed activity write never fails the business
// operation.
func (s *Service) record(ctx context.Context, entry activity.Entry) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, entry); err != nil {
		logger.Warn(ctx, "record activity", "error", err)
	}
}
