package dto

import (
	"encoding/json"
	"time"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type SaveGSTReturnRequest struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	GSTR1Data  json.RawMessage `json:"gstr1_data"`
	GSTR3BData json.RawMessage `json:"gstr3b_data"`
	IsFiled    bool            `json:"is_filed"`
}

type GSTReturnResponse struct {
	ID         string          `json:"id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	GSTR1Data  json.RawMessage `json:"gstr1_data,omitempty"`
	GSTR3BData json.RawMessage `json:"gstr3b_data,omitempty"`
	FiledDate  *time.Time      `json:"filed_date,omitempty"`
	IsFiled    bool            `json:"is_filed"`
}

func ToGSTReturnResponse(r *entity.GSTReturn) GSTReturnResponse {
	return GSTReturnResponse{
		ID:         r.ID,
		Month:      r.Month,
		Year:       r.Year,
		GSTR1Data:  r.GSTR1Data,
		GSTR3BData: r.GSTR3BData,
		FiledDate:  r.FiledDate,
		IsFiled:    r.IsFiled,
	}
}
