package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hardpos/internal/core/tx"
	"hardpos/pkg/logger"
)

var tracer = otel.Tracer("hardpos/tx")

// Compile-time check that TxManager implements tx.Manager.
var _ tx.Manager = (*TxManager)(nil)

// TxOptions configures transaction behavior.
type TxOptions struct {
	// IsolationLevel: pgx.Serializable, pgx.RepeatableRead, pgx.ReadCommitted
	IsolationLevel pgx.TxIsoLevel

	// AccessMode: pgx.ReadWrite, pgx.ReadOnly
	AccessMode pgx.TxAccessMode

	// StatementTimeout protects against long-running queries (default 30s)
	StatementTimeout time.Duration
}

// DefaultTxOptions returns production-safe defaults.
func DefaultTxOptions() TxOptions {
	return TxOptions{
		IsolationLevel:   pgx.ReadCommitted,
		AccessMode:       pgx.ReadWrite,
		StatementTimeout: 30 * time.Second,
	}
}

// SerializableTxOptions for critical operations requiring serializable isolation.
func SerializableTxOptions() TxOptions {
	opts := DefaultTxOptions()
	opts.IsolationLevel = pgx.Serializable
	return opts
}

// TxManager manages database transactions. The active transaction travels
// in the context, so repositories transparently join an enclosing
// transaction via GetQuerier.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new transaction manager.
func NewTxManager(pool *Pool) *TxManager {
	return &TxManager{pool: pool.Pool}
}

// txKey is the context key for the active transaction.
type txKey struct{}

// Tx wraps pgx.Tx.
type Tx struct {
	pgx.Tx
}

// WithinTransaction executes fn within a transaction.
// If a transaction already exists in ctx, it is reused.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.WithinTransactionWithOptions(ctx, DefaultTxOptions(), fn)
}

// WithinTransactionWithOptions executes fn with custom transaction options.
func (m *TxManager) WithinTransactionWithOptions(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(
			attribute.String("tx.isolation", string(opts.IsolationLevel)),
		))
	defer span.End()

	// An enclosing transaction is reused as-is.
	if existing := m.GetTx(ctx); existing != nil {
		return fn(ctx)
	}

	return m.startNewTransaction(ctx, opts, fn)
}

func (m *TxManager) startNewTransaction(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	dbTx, err := m.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   opts.IsolationLevel,
		AccessMode: opts.AccessMode,
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if opts.StatementTimeout > 0 {
		_, err = dbTx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", opts.StatementTimeout.Milliseconds()))
		if err != nil {
			_ = dbTx.Rollback(ctx)
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	txCtx := context.WithValue(ctx, txKey{}, &Tx{Tx: dbTx})

	if err := fn(txCtx); err != nil {
		// Use background context for rollback so it completes even if the
		// original context was cancelled.
		if rbErr := dbTx.Rollback(context.Background()); rbErr != nil {
			logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetTx returns the current transaction from context, or nil if none.
func (m *TxManager) GetTx(ctx context.Context) *Tx {
	if t, ok := ctx.Value(txKey{}).(*Tx); ok {
		return t
	}
	return nil
}

// Querier is the subset of pgx operations shared by pool and transaction.
// Repositories work against it so they run both inside and outside
// transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetQuerier returns the transaction from context if present, otherwise the pool.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if t := m.GetTx(ctx); t != nil {
		return t.Tx
	}
	return m.pool
}

// ReadOnly executes fn in a read-only transaction.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := DefaultTxOptions()
	opts.AccessMode = pgx.ReadOnly
	return m.WithinTransactionWithOptions(ctx, opts, fn)
}
