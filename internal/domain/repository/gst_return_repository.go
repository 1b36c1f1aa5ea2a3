package repository

import "github.com/rightchoice/medicare-api/internal/domain/entity"

// GSTReturnRepository is the persistence port for GST return blobs. The
// payloads stay opaque; one row per (company, month, year).
type GSTReturnRepository interface {
	Upsert(ret *entity.GSTReturn) error
	GetByPeriod(companyID string, month, year int) (*entity.GSTReturn, error)
	List(companyID string) ([]*entity.GSTReturn, error)
}
