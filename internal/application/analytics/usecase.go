// Package analytics serves the dashboard aggregation.
package analytics

import (
	"fmt"
	"time"

	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// UseCase computes the company dashboard summary.
type UseCase struct {
	repo repository.AnalyticsRepository
}

// NewUseCase builds the analytics use case.
func NewUseCase(repo repository.AnalyticsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Summary returns the key counts and low-stock positions for the company.
func (uc *UseCase) Summary(companyID string) (*repository.DashboardSummary, error) {
	summary, err := uc.repo.Summary(companyID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}
