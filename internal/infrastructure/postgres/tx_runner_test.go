package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// stubTx satisfies pgx.Tx for the commit/rollback paths the runner exercises;
// the embedded interface stays nil because the callbacks never touch it.
type stubTx struct {
	pgx.Tx
	commit    func() error
	rollbacks *int
}

func (s *stubTx) Commit(ctx context.Context) error   { return s.commit() }
func (s *stubTx) Rollback(ctx context.Context) error { *s.rollbacks++; return nil }

type stubDB struct {
	begins    int
	rollbacks int
	commit    func(attempt int) error
}

func (s *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	s.begins++
	attempt := s.begins
	return &stubTx{commit: func() error { return s.commit(attempt) }, rollbacks: &s.rollbacks}, nil
}

func noopLedgerFn(repository.StockRepository, repository.BatchRepository, repository.StockMovementRepository) error {
	return nil
}

func TestTxRunnerRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("serialization failure on every commit exhausts retries as conflict", func(t *testing.T) {
		db := &stubDB{commit: func(int) error {
			return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
		}}
		r := &TxRunner{db: db}

		err := r.Run(ctx, noopLedgerFn)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, txRetries, db.begins)
		assert.Equal(t, txRetries, db.rollbacks)
	})

	t.Run("deadlock on first commit is retried and succeeds", func(t *testing.T) {
		db := &stubDB{commit: func(attempt int) error {
			if attempt == 1 {
				return &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}
			}
			return nil
		}}
		r := &TxRunner{db: db}

		require.NoError(t, r.Run(ctx, noopLedgerFn))
		assert.Equal(t, 2, db.begins)
		assert.Equal(t, 1, db.rollbacks)
	})

	t.Run("domain error from the callback aborts without retrying", func(t *testing.T) {
		db := &stubDB{commit: func(int) error { return nil }}
		r := &TxRunner{db: db}

		err := r.Run(ctx, func(repository.StockRepository, repository.BatchRepository, repository.StockMovementRepository) error {
			return domain.ErrInsufficientStock
		})
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.NotErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, 1, db.begins)
		assert.Equal(t, 1, db.rollbacks)
	})

	t.Run("non-retryable commit error is returned as-is", func(t *testing.T) {
		db := &stubDB{commit: func(int) error {
			return &pgconn.PgError{Code: "23514", Message: "check constraint violated"}
		}}
		r := &TxRunner{db: db}

		err := r.Run(ctx, noopLedgerFn)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, 1, db.begins)
	})
}
