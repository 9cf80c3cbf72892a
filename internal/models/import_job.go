package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type ImportStatus string

const (
	ImportPending ImportStatus = "pending"
	ImportSuccess ImportStatus = "success"
	ImportFailed  ImportStatus = "failed"
)

// ImportJob tracks one CSV import attempt. The row is written twice in
// its lifetime: once at creation (pending) and once when the run
// finalizes with counters and per-row errors.
type ImportJob struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"index" json:"-"`
	UserID      uint           `json:"-"`
	FileName    string         `json:"fileName"`
	Status      ImportStatus   `gorm:"index;size:10" json:"status"`
	TotalRows   int            `json:"totalRows"`
	SuccessRows int            `json:"successRows"`
	FailedRows  int            `json:"failedRows"`
	Errors      datatypes.JSON `json:"errors"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ErrorList decodes the stored JSON error array; nil when the job has
// no recorded errors.
func (j *ImportJob) ErrorList() []string {
	if len(j.Errors) == 0 {
		return nil
	}
	var errs []string
	if err := json.Unmarshal(j.Errors, &errs); err != nil {
		return nil
	}
	return errs
}
