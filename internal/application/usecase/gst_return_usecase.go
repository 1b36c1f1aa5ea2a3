package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// GSTReturnUseCase stores and serves GSTR-1/GSTR-3B filing data per month.
// The payloads are opaque blobs; one row per (company, month, year).
type GSTReturnUseCase struct {
	repo repository.GSTReturnRepository
}

// NewGSTReturnUseCase builds the GST return use case.
func NewGSTReturnUseCase(repo repository.GSTReturnRepository) *GSTReturnUseCase {
	return &GSTReturnUseCase{repo: repo}
}

// Save upserts the return data for a period. Saving again for the same period
// replaces the previous data; marking IsFiled stamps the filing date.
func (uc *GSTReturnUseCase) Save(companyID string, req dto.SaveGSTReturnRequest) (*entity.GSTReturn, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2017 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ret := &entity.GSTReturn{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Month:      req.Month,
		Year:       req.Year,
		GSTR1Data:  req.GSTR1Data,
		GSTR3BData: req.GSTR3BData,
		IsFiled:    req.IsFiled,
		CreatedAt:  now,
	}
	if req.IsFiled {
		ret.FiledDate = &now
	}
	if err := uc.repo.Upsert(ret); err != nil {
		return nil, fmt.Errorf("save gst return: %w", err)
	}
	return ret, nil
}

// GetByPeriod returns the return for one month.
func (uc *GSTReturnUseCase) GetByPeriod(companyID string, month, year int) (*entity.GSTReturn, error) {
	ret, err := uc.repo.GetByPeriod(companyID, month, year)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}
	return ret, nil
}

// List returns all stored returns for the company.
func (uc *GSTReturnUseCase) List(companyID string) ([]*entity.GSTReturn, error) {
	return uc.repo.List(companyID)
}
