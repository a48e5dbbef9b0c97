package calculation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/id"
	"hardpos/internal/domain/ledger"
	"hardpos/pkg/numerator"
)

type seqRow struct{ val int64 }

func (r *seqRow) Scan(dest ...any) error {
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = r.val
		}
	}
	return nil
}

type seqQuerier struct{ val int64 }

func (q *seqQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.val++
	return &seqRow{val: q.val}
}

type txMarker struct{}

// fakeTxManager marks the context so the repository can tell whether it runs
// inside the transaction boundary.
type fakeTxManager struct{ calls int }

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type recordingRepo struct {
	created   *Calculation
	inTx      bool
	createErr error
}

func (r *recordingRepo) Create(ctx context.Context, c *Calculation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = c
	r.inTx, _ = ctx.Value(txMarker{}).(bool)
	return nil
}

func (r *recordingRepo) GetByID(ctx context.Context, calcID id.ID) (*Calculation, error) {
	return nil, nil
}

func (r *recordingRepo) Recent(ctx context.Context, limit int) ([]Calculation, error) {
	return nil, nil
}

func TestSave_CreatesInsideTransaction(t *testing.T) {
	repo := &recordingRepo{}
	txm := &fakeTxManager{}
	svc := NewService(repo, txm, numerator.New(&seqQuerier{}), nil)

	calc, err := svc.Save(context.Background(), calcLedger(t), decimal.NewFromInt(10), DefaultTaxPercent)
	require.NoError(t, err)

	assert.Equal(t, 1, txm.calls)
	require.NotNil(t, repo.created)
	assert.True(t, repo.inTx, "header and lines must be written inside the transaction")

	year := time.Now().Format("2006")
	assert.Equal(t, fmt.Sprintf("CALC-%s-00001", year), calc.Number)
}

func TestSave_ValidationSkipsPersistence(t *testing.T) {
	repo := &recordingRepo{}
	txm := &fakeTxManager{}
	svc := NewService(repo, txm, numerator.New(&seqQuerier{}), nil)

	_, err := svc.Save(context.Background(), ledger.NewCalculator(), decimal.Zero, DefaultTaxPercent)
	require.Error(t, err)

	assert.Nil(t, repo.created)
	assert.Equal(t, 0, txm.calls)
}

func TestSave_CreateErrorPropagates(t *testing.T) {
	repo := &recordingRepo{createErr: errors.New("line insert failed")}
	svc := NewService(repo, &fakeTxManager{}, numerator.New(&seqQuerier{}), nil)

	_, err := svc.Save(context.Background(), calcLedger(t), decimal.Zero, DefaultTaxPercent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line insert failed")
}
