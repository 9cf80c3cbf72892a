package repository

import (
	"encoding/json"

	"finance-tracker-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ImportJobRepository struct {
	db *gorm.DB
}

func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

func (r *ImportJobRepository) Create(companyID, userID uint, fileName string) (*models.ImportJob, error) {
	job := &models.ImportJob{
		CompanyID: companyID,
		UserID:    userID,
		FileName:  fileName,
		Status:    models.ImportPending,
	}
	if err := r.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Finalize is the single terminal write of a job's lifetime.
func (r *ImportJobRepository) Finalize(jobID uint, status models.ImportStatus, totalRows, successRows, failedRows int, errs []string) error {
	updates := map[string]interface{}{
		"status":       status,
		"total_rows":   totalRows,
		"success_rows": successRows,
		"failed_rows":  failedRows,
	}
	if len(errs) > 0 {
		raw, err := json.Marshal(errs)
		if err != nil {
			return err
		}
		updates["errors"] = datatypes.JSON(raw)
	}
	return r.db.Model(&models.ImportJob{}).
		Where("id = ?", jobID).
		Updates(updates).Error
}

// GetForCompany returns the job only when it belongs to the given
// company; jobs of other companies appear absent.
func (r *ImportJobRepository) GetForCompany(jobID, companyID uint) (*models.ImportJob, error) {
	var job models.ImportJob
	if err := r.db.First(&job, "id = ? AND company_id = ?", jobID, companyID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
