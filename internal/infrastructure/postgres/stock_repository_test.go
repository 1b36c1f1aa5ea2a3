package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuerier scripts QueryRow results and records the SQL it sees.
type stubQuerier struct {
	execs   []string
	selects []string
	rows    []stubRow
}

func (q *stubQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.selects = append(q.selects, sql)
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

type stubRow struct {
	err  error
	vals []any
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.vals[i].(string)
		case *decimal.Decimal:
			*p = r.vals[i].(decimal.Decimal)
		case *time.Time:
			*p = r.vals[i].(time.Time)
		}
	}
	return nil
}

func stockRowVals(id string, qty int64) []any {
	return []any{
		id, "co-1", "item-1", "loc-1", "",
		decimal.NewFromInt(qty), decimal.Zero, time.Now(),
	}
}

func TestStockGetForUpdate(t *testing.T) {
	t.Run("existing row is locked directly", func(t *testing.T) {
		q := &stubQuerier{rows: []stubRow{{vals: stockRowVals("s1", 40)}}}
		repo := NewStockRepository(q)

		s, err := repo.GetForUpdate("co-1", "item-1", "loc-1", "")
		require.NoError(t, err)
		assert.Equal(t, "s1", s.ID)
		assert.True(t, decimal.NewFromInt(40).Equal(s.Quantity))
		assert.Empty(t, q.execs)
		require.Len(t, q.selects, 1)
		assert.Contains(t, q.selects[0], "FOR UPDATE")
	})

	// An absent key must be created and then locked: locking nothing and
	// computing the new quantity from a zero read would let two concurrent
	// first writers overwrite each other.
	t.Run("absent row is inserted then locked", func(t *testing.T) {
		q := &stubQuerier{rows: []stubRow{
			{err: pgx.ErrNoRows},
			{vals: stockRowVals("s2", 0)},
		}}
		repo := NewStockRepository(q)

		s, err := repo.GetForUpdate("co-1", "item-1", "loc-1", "")
		require.NoError(t, err)
		assert.Equal(t, "s2", s.ID)
		assert.True(t, s.Quantity.IsZero())

		require.Len(t, q.execs, 1)
		assert.Contains(t, q.execs[0], "ON CONFLICT")
		assert.Contains(t, q.execs[0], "DO NOTHING")
		require.Len(t, q.selects, 2)
		for _, sel := range q.selects {
			assert.Contains(t, sel, "FOR UPDATE")
		}
	})

	t.Run("other select errors propagate", func(t *testing.T) {
		q := &stubQuerier{rows: []stubRow{{err: errors.New("connection reset")}}}
		repo := NewStockRepository(q)

		_, err := repo.GetForUpdate("co-1", "item-1", "loc-1", "")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "connection reset"))
		assert.Empty(t, q.execs)
	})
}
