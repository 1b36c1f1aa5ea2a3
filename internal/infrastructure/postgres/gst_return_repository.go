package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

var _ repository.GSTReturnRepository = (*GSTReturnRepo)(nil)

// GSTReturnRepo implements GSTReturnRepository over PostgreSQL. The GSTR
// payloads are stored as jsonb and stay opaque to the core.
type GSTReturnRepo struct {
	q Querier
}

// NewGSTReturnRepository builds the GST return adapter.
func NewGSTReturnRepository(q Querier) *GSTReturnRepo {
	return &GSTReturnRepo{q: q}
}

const gstReturnColumns = `id, company_id, month, year, gstr1_data, gstr3b_data, filed_date, is_filed, created_at`

// Upsert inserts or replaces the return for (company, month, year).
func (r *GSTReturnRepo) Upsert(ret *entity.GSTReturn) error {
	query := `
		INSERT INTO gst_returns (` + gstReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, month, year)
		DO UPDATE SET gstr1_data = EXCLUDED.gstr1_data, gstr3b_data = EXCLUDED.gstr3b_data,
			filed_date = EXCLUDED.filed_date, is_filed = EXCLUDED.is_filed`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.CompanyID, ret.Month, ret.Year,
		ret.GSTR1Data, ret.GSTR3BData, ret.FiledDate, ret.IsFiled, ret.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert gst return: %w", err)
	}
	return nil
}

// GetByPeriod returns the return for the period, or nil when absent.
func (r *GSTReturnRepo) GetByPeriod(companyID string, month, year int) (*entity.GSTReturn, error) {
	query := `SELECT ` + gstReturnColumns + ` FROM gst_returns WHERE company_id = $1 AND month = $2 AND year = $3`
	var ret entity.GSTReturn
	err := r.q.QueryRow(context.Background(), query, companyID, month, year).Scan(
		&ret.ID, &ret.CompanyID, &ret.Month, &ret.Year,
		&ret.GSTR1Data, &ret.GSTR3BData, &ret.FiledDate, &ret.IsFiled, &ret.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gst return: %w", err)
	}
	return &ret, nil
}

// List returns the company's returns, most recent period first.
func (r *GSTReturnRepo) List(companyID string) ([]*entity.GSTReturn, error) {
	query := `SELECT ` + gstReturnColumns + ` FROM gst_returns WHERE company_id = $1 ORDER BY year DESC, month DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list gst returns: %w", err)
	}
	defer rows.Close()
	var list []*entity.GSTReturn
	for rows.Next() {
		var ret entity.GSTReturn
		if err := rows.Scan(&ret.ID, &ret.CompanyID, &ret.Month, &ret.Year,
			&ret.GSTR1Data, &ret.GSTR3BData, &ret.FiledDate, &ret.IsFiled, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gst return: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}
