package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/application/payments"
	"github.com/rightchoice/medicare-api/internal/application/procurement"
	"github.com/rightchoice/medicare-api/internal/application/sales"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ procurement.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ payments.TxRunner = (*TxRunner)(nil)

// txRetries bounds retries on serialization failures and deadlocks before
// giving up with ErrConflict.
const txRetries = 3

// txBeginner starts transactions; satisfied by *pgxpool.Pool.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner executes callbacks inside a PostgreSQL transaction, handing them
// repositories bound to that transaction.
type TxRunner struct {
	db txBeginner
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{db: pool}
}

// run begins a transaction, runs fn and commits, retrying the whole
// transaction on retryable errors. Domain errors from fn abort immediately.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < txRetries; attempt++ {
		tx, err := r.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		err = fn(tx)
		if err == nil {
			err = tx.Commit(ctx)
			if err == nil {
				return nil
			}
			err = fmt.Errorf("commit transaction: %w", err)
		}
		_ = tx.Rollback(ctx)
		if !isRetryableTx(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, lastErr)
}

// Run executes a ledger transaction (stock, batches, movements).
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewStockRepository(tx), NewBatchRepository(tx), NewStockMovementRepository(tx))
	})
}

// RunProcurement executes a GRN posting transaction: ledger repos plus
// purchase orders and GRNs.
func (r *TxRunner) RunProcurement(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	poRepo repository.PurchaseOrderRepository,
	grnRepo repository.GRNRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewStockRepository(tx),
			NewBatchRepository(tx),
			NewStockMovementRepository(tx),
			NewPurchaseOrderRepository(tx),
			NewGRNRepository(tx),
		)
	})
}

// RunSales executes an invoice creation transaction: ledger repos plus sales
// orders and invoices.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	soRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewStockRepository(tx),
			NewBatchRepository(tx),
			NewStockMovementRepository(tx),
			NewSalesOrderRepository(tx),
			NewInvoiceRepository(tx),
		)
	})
}

// RunPayments executes a payment recording transaction: invoices and payments.
func (r *TxRunner) RunPayments(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewInvoiceRepository(tx), NewPaymentRepository(tx))
	})
}
