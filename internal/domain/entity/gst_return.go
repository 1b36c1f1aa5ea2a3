package entity

import (
	"encoding/json"
	"time"
)

// GSTReturn holds GSTR-1/GSTR-3B filing data for a month. The return payloads
// are opaque to the core and stored as raw JSON.
type GSTReturn struct {
	ID         string
	CompanyID  string
	Month      int
	Year       int
	GSTR1Data  json.RawMessage
	GSTR3BData json.RawMessage
	FiledDate  *time.Time
	IsFiled    bool
	CreatedAt  time.Time
}
